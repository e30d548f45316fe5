package browse

import (
	"testing"
	"time"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(10, time.Minute)

	sess := store.Create("discord:1", "dark", makeCards(15))
	if sess == nil {
		t.Fatal("Create returned nil")
	}
	if sess.ID == "" {
		t.Error("Session has no ID")
	}

	got := store.Get("discord:1")
	if got != sess {
		t.Error("Get did not return the created session")
	}
	if store.Get("discord:2") != nil {
		t.Error("Get for unknown owner should return nil")
	}
	if store.Active() != 1 {
		t.Errorf("Active() = %d, want 1", store.Active())
	}
}

func TestStoreSupersedesPreviousSession(t *testing.T) {
	store := NewStore(10, time.Minute)

	first := store.Create("discord:1", "dark", makeCards(15))
	second := store.Create("discord:1", "blue", makeCards(5))

	got := store.Get("discord:1")
	if got != second {
		t.Error("Get should return the newest session")
	}
	if got == first {
		t.Error("Superseded session is still live")
	}
	if store.Active() != 1 {
		t.Errorf("Active() = %d after supersede, want 1", store.Active())
	}
}

func TestStoreLazyExpiry(t *testing.T) {
	store := NewStore(10, -time.Second) // already past deadline

	store.Create("discord:1", "dark", makeCards(3))
	if store.Get("discord:1") != nil {
		t.Error("Expired session should not be returned")
	}
	if store.Active() != 0 {
		t.Errorf("Active() = %d after expiry, want 0", store.Active())
	}
}

func TestStoreTouchExtendsDeadline(t *testing.T) {
	store := NewStore(10, 50*time.Millisecond)

	sess := store.Create("discord:1", "dark", makeCards(3))
	time.Sleep(30 * time.Millisecond)
	store.Touch(sess)
	time.Sleep(30 * time.Millisecond)

	// 60ms elapsed but the touch reset the 50ms window.
	if store.Get("discord:1") == nil {
		t.Error("Touched session expired inside the refreshed window")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(10, time.Minute)
	store.Create("discord:1", "dark", makeCards(3))

	store.Delete("discord:1")
	if store.Get("discord:1") != nil {
		t.Error("Deleted session is still live")
	}
}

func TestStoreSweep(t *testing.T) {
	store := NewStore(10, time.Minute)
	store.Create("discord:1", "dark", makeCards(3))
	store.Create("discord:2", "blue", makeCards(3))

	store.sweep(time.Now().Add(2 * time.Minute))
	if store.Active() != 0 {
		t.Errorf("Active() = %d after sweep, want 0", store.Active())
	}
}
