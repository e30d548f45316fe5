// Package cardtext renders card records as chat text. Discord has its
// own embed layout; the text platforms share this one.
package cardtext

import (
	"fmt"

	"github.com/whdzera/atem/internal/models"
)

// MonsterSuffixes maps the API's monster type strings to the race
// suffix shown on the card's type line. Membership doubles as the
// monster check: anything absent is a Spell, Trap or Skill card.
var MonsterSuffixes = map[string]string{
	"Normal Monster":                  "",
	"Normal Tuner Monster":            "/ Tuner",
	"Effect Monster":                  "/ Effect",
	"Flip Effect Monster":             "/ Flip / Effect",
	"Flip Tuner Effect Monster":       "/ Flip / Tuner / Effect",
	"Tuner Monster":                   "/ Tuner / Effect",
	"Toon Monster":                    "/ Toon / Effect",
	"Gemini Monster":                  "/ Gemini / Effect",
	"Spirit Monster":                  "/ Spirit / Effect",
	"Union Effect Monster":            "/ Union / Effect",
	"Union Tuner Effect Monster":      "/ Union / Tuner / Effect",
	"Ritual Monster":                  "/ Ritual",
	"Ritual Effect Monster":           "/ Ritual / Effect",
	"Fusion Monster":                  "/ Fusion / Effect",
	"Synchro Monster":                 "/ Synchro / Effect",
	"Synchro Pendulum Effect Monster": "/ Synchro / Pendulum / Effect",
	"Synchro Tuner Monster":           "/ Synchro / Tuner / Effect",
	"XYZ Monster":                     "/ XYZ / Effect",
	"XYZ Pendulum Effect Monster":     "/ XYZ / Pendulum / Effect",
	"Pendulum Effect Monster":         "/ Pendulum / Effect",
	"Pendulum Flip Effect Monster":    "/ Pendulum / Flip / Effect",
	"Pendulum Normal Monster":         "/ Pendulum",
	"Pendulum Tuner Effect Monster":   "/ Pendulum / Tuner / Effect",
	"Pendulum Effect Fusion Monster":  "/ Pendulum / Effect / Fusion",
	"Link Monster":                    "/ Link / Effect",
}

// IsMonster reports whether the card type is a monster frame.
func IsMonster(cardType string) bool {
	_, ok := MonsterSuffixes[cardType]
	return ok
}

// Stat renders an ATK or DEF value, "?" when the API omits it.
func Stat(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

// Render formats a card with *bold* markup as understood by both
// Telegram (Markdown mode) and WhatsApp.
func Render(card *models.Card) string {
	suffix, monster := MonsterSuffixes[card.Type]
	if !monster {
		return fmt.Sprintf(
			"*%s*\n\n*Type:* %s\n*Property:* %s\n\n*Effect*\n%s",
			card.Name, card.Type, card.Race, card.Desc,
		)
	}

	return fmt.Sprintf(
		"*%s*\n\n*Limit:* OCG: %s | TCG: %s\n*Type:* %s\n*Attribute:* %s\n*Level:* %d\n\n*[ %s %s ]*\n%s\n\n*ATK:* %s  *DEF:* %s",
		card.Name, card.BanOCG(), card.BanTCG(), card.Type, card.Attribute, card.Level,
		card.Race, suffix, card.Desc, Stat(card.ATK), Stat(card.DEF),
	)
}
