package browse

import (
	"testing"
	"time"
)

func routerFixture(t *testing.T, results int) (*Router, *Store, *Session) {
	t.Helper()
	store := NewStore(10, time.Minute)
	sess := store.Create("discord:1", "dark", makeCards(results))
	sess.SetMessage("chan", "msg-1")
	return NewRouter(store, DiscordScheme()), store, sess
}

func TestRouterIgnoresBotActor(t *testing.T) {
	router, _, _ := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:1", Bot: true, Message: "msg-1", Symbol: "➡️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Bot reaction routed as %v, want ignore", action.Kind)
	}
}

func TestRouterIgnoresUnknownActor(t *testing.T) {
	router, _, sess := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:999", Message: "msg-1", Symbol: "➡️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Stranger's reaction routed as %v, want ignore", action.Kind)
	}
	if sess.Page().Number != 0 {
		t.Error("Stranger's reaction moved the owner's page")
	}
}

func TestRouterIgnoresExpiredSession(t *testing.T) {
	store := NewStore(10, -time.Second)
	sess := store.Create("discord:1", "dark", makeCards(23))
	sess.SetMessage("chan", "msg-1")
	router := NewRouter(store, DiscordScheme())

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "➡️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Expired session reaction routed as %v, want ignore", action.Kind)
	}
}

func TestRouterIgnoresStaleMessage(t *testing.T) {
	router, _, sess := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:1", Message: "old-msg", Symbol: "➡️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Stale message reaction routed as %v, want ignore", action.Kind)
	}
	if sess.Page().Number != 0 {
		t.Error("Stale message reaction moved the page")
	}
}

func TestRouterNavigateNext(t *testing.T) {
	router, _, sess := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "➡️"})
	if action.Kind != ActionNavigate || action.Delta != 1 {
		t.Fatalf("Next routed as %+v, want Navigate(+1)", action)
	}
	if sess.Page().Number != 1 {
		t.Errorf("Page = %d after next, want 1", sess.Page().Number)
	}
}

func TestRouterNavigatePrevAtFirstPage(t *testing.T) {
	router, _, sess := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "⬅️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Prev on first page routed as %v, want ignore", action.Kind)
	}
	if sess.Page().Number != 0 {
		t.Error("Prev on first page moved the page")
	}
}

func TestRouterNavigateNextAtLastPage(t *testing.T) {
	router, _, sess := routerFixture(t, 23)
	sess.GoTo(+1)
	sess.GoTo(+1)

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "➡️"})
	if action.Kind != ActionIgnore {
		t.Errorf("Next on last page routed as %v, want ignore", action.Kind)
	}
	if sess.Page().Number != 2 {
		t.Error("Next on last page moved the page")
	}
}

func TestRouterSelectAbsoluteIndex(t *testing.T) {
	router, _, sess := routerFixture(t, 23)
	sess.GoTo(+1) // page 1: items 10..19

	// Slot 3 on page 1 selects absolute index 12.
	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "3⃣"})
	if action.Kind != ActionSelect {
		t.Fatalf("Slot reaction routed as %v, want select", action.Kind)
	}
	if action.Index != 12 {
		t.Errorf("Select index = %d, want 12", action.Index)
	}
}

func TestRouterSelectTenthSlot(t *testing.T) {
	router, _, _ := routerFixture(t, 23)

	// "0" labels the tenth slot on the page.
	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "0⃣"})
	if action.Kind != ActionSelect || action.Index != 9 {
		t.Errorf("Tenth slot routed as %+v, want Select(9)", action)
	}
}

func TestRouterIgnoresEmptySlot(t *testing.T) {
	router, _, sess := routerFixture(t, 23)
	sess.GoTo(+1)
	sess.GoTo(+1) // last page holds items 20..22, slots 4..10 empty

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "5⃣"})
	if action.Kind != ActionIgnore {
		t.Errorf("Empty slot routed as %v, want ignore", action.Kind)
	}
}

func TestRouterIgnoresUnknownSymbol(t *testing.T) {
	router, _, _ := routerFixture(t, 23)

	action := router.Handle(Event{Actor: "discord:1", Message: "msg-1", Symbol: "🔥"})
	if action.Kind != ActionIgnore {
		t.Errorf("Unknown symbol routed as %v, want ignore", action.Kind)
	}
}

func TestRouterCallbackScheme(t *testing.T) {
	store := NewStore(10, time.Minute)
	sess := store.Create("telegram:7", "dark", makeCards(23))
	sess.SetMessage("12345", "67")
	router := NewRouter(store, CallbackScheme())

	action := router.Handle(Event{Actor: "telegram:7", Message: "67", Symbol: "next"})
	if action.Kind != ActionNavigate || action.Delta != 1 {
		t.Fatalf("Callback next routed as %+v, want Navigate(+1)", action)
	}

	action = router.Handle(Event{Actor: "telegram:7", Message: "67", Symbol: "0"})
	if action.Kind != ActionSelect || action.Index != 19 {
		t.Errorf("Callback slot routed as %+v, want Select(19)", action)
	}
}
