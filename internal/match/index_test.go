package match

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	corpus := `["Dark Magician", "Blue-Eyes White Dragon", "Pot of Greed"]`
	if err := os.WriteFile(path, []byte(corpus), 0o644); err != nil {
		t.Fatalf("Failed to write corpus: %v", err)
	}

	idx, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
	if got := idx.Resolve("pot of greed"); got != "Pot of Greed" {
		t.Errorf("Resolve after load = %q, want %q", got, "Pot of Greed")
	}
}

func TestLoadIndexMissingFile(t *testing.T) {
	if _, err := LoadIndex(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing corpus file")
	}
}

func TestLoadIndexInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644); err != nil {
		t.Fatalf("Failed to write corpus: %v", err)
	}
	if _, err := LoadIndex(path); err == nil {
		t.Error("Expected error for invalid corpus JSON")
	}
}
