package cardtext

import (
	"strings"
	"testing"

	"github.com/whdzera/atem/internal/models"
)

func intp(v int) *int { return &v }

func TestRenderMonster(t *testing.T) {
	card := &models.Card{
		Name:      "Dark Magician",
		Type:      "Normal Monster",
		Desc:      "The ultimate wizard.",
		ATK:       intp(2500),
		DEF:       intp(2100),
		Level:     7,
		Attribute: "DARK",
		Race:      "Spellcaster",
	}

	text := Render(card)
	for _, want := range []string{"*Dark Magician*", "*Level:* 7", "[ Spellcaster  ]", "*ATK:* 2500", "*DEF:* 2100", "OCG: Unlimited"} {
		if !strings.Contains(text, want) {
			t.Errorf("Render missing %q in:\n%s", want, text)
		}
	}
}

func TestRenderSpell(t *testing.T) {
	card := &models.Card{
		Name: "Pot of Greed",
		Type: "Spell Card",
		Desc: "Draw 2 cards.",
		Race: "Normal",
	}

	text := Render(card)
	for _, want := range []string{"*Pot of Greed*", "*Property:* Normal", "*Effect*"} {
		if !strings.Contains(text, want) {
			t.Errorf("Render missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "ATK") {
		t.Error("Spell render should not carry ATK/DEF")
	}
}

func TestRenderMissingStats(t *testing.T) {
	card := &models.Card{Name: "???", Type: "Effect Monster", Race: "Fiend"}
	text := Render(card)
	if !strings.Contains(text, "*ATK:* ?") || !strings.Contains(text, "*DEF:* ?") {
		t.Errorf("Missing stats should render as ?, got:\n%s", text)
	}
}

func TestIsMonster(t *testing.T) {
	if !IsMonster("Link Monster") {
		t.Error("Link Monster should classify as a monster")
	}
	if IsMonster("Spell Card") || IsMonster("Trap Card") {
		t.Error("Spell and Trap cards should not classify as monsters")
	}
}
