package match

import "testing"

var testNames = []string{
	"Dark Magician",
	"Dark Magician Girl",
	"Blue-Eyes White Dragon",
	"Harpie Lady",
	"Harpie Lady Sisters",
	"Pot of Greed",
}

func TestResolveExactName(t *testing.T) {
	idx := NewIndex(testNames)
	if got := idx.Resolve("Dark Magician"); got != "Dark Magician" {
		t.Errorf("Resolve exact = %q, want %q", got, "Dark Magician")
	}
}

func TestResolveSubstringFirstMatchWins(t *testing.T) {
	idx := NewIndex(testNames)

	// Both Harpie entries contain "harpie"; index order decides.
	if got := idx.Resolve("harpie"); got != "Harpie Lady" {
		t.Errorf("Resolve(%q) = %q, want %q", "harpie", got, "Harpie Lady")
	}

	// Determinism: same answer every time.
	for i := 0; i < 5; i++ {
		if got := idx.Resolve("harpie"); got != "Harpie Lady" {
			t.Fatalf("Resolve(%q) unstable: got %q on attempt %d", "harpie", got, i)
		}
	}
}

func TestResolveSubstringBeatsFuzzy(t *testing.T) {
	// "greed" is within edit-distance budget of "Grod", but it is a
	// substring of "Pot of Greed", and containment wins outright.
	idx := NewIndex([]string{"Grod", "Pot of Greed"})
	if got := idx.Resolve("greed"); got != "Pot of Greed" {
		t.Errorf("Resolve(%q) = %q, want the substring match", "greed", got)
	}
}

func TestResolveIgnoresCaseAndPunctuation(t *testing.T) {
	idx := NewIndex(testNames)

	tests := []struct {
		query    string
		expected string
	}{
		{"blue-eyes white dragon", "Blue-Eyes White Dragon"},
		{"BLUEEYES WHITE DRAGON", "Blue-Eyes White Dragon"},
		{"pot    of   greed", "Pot of Greed"},
	}
	for _, tt := range tests {
		if got := idx.Resolve(tt.query); got != tt.expected {
			t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.expected)
		}
	}
}

func TestResolveFuzzyTypo(t *testing.T) {
	idx := NewIndex(testNames)

	tests := []struct {
		query    string
		expected string
	}{
		{"dark magicain", "Dark Magician"}, // transposition
		{"dark magican", "Dark Magician"},  // deletion
		{"dork magician", "Dark Magician"}, // substitution
		{"pot of greeed", "Pot of Greed"},  // insertion
	}
	for _, tt := range tests {
		if got := idx.Resolve(tt.query); got != tt.expected {
			t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.expected)
		}
	}
}

func TestResolveMissReturnsQueryUnchanged(t *testing.T) {
	idx := NewIndex(testNames)

	query := "Totally Unrelated Gibberish XYZQ"
	if got := idx.Resolve(query); got != query {
		t.Errorf("Resolve miss = %q, want input %q back", got, query)
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	idx := NewIndex(testNames)
	if got := idx.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want empty string back", got)
	}
	if got := idx.Resolve("   "); got != "   " {
		t.Errorf("Resolve(blank) = %q, want input back", got)
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"magicain", "magician", 1}, // adjacent transposition counts once
		{"abcd", "abcd", 0},
	}
	for _, tt := range tests {
		if got := editDistance(tt.s1, tt.s2); got != tt.expected {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.expected)
		}
	}
}
