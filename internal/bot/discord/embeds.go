package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/cardtext"
	"github.com/whdzera/atem/internal/models"
)

const (
	embedColor    = 0xff8040
	notFoundColor = 0xff1432
	notFoundImage = "https://i.imgur.com/lPSo3Tt.jpg"
)

// monsterColors maps monster frame types to embed colors; the race
// suffix on the type line comes from cardtext.MonsterSuffixes.
var monsterColors = map[string]int{
	"Normal Monster":                  0xdac14c,
	"Normal Tuner Monster":            0xdac14c,
	"Effect Monster":                  0xa87524,
	"Flip Effect Monster":             0xa87524,
	"Flip Tuner Effect Monster":       0xa87524,
	"Tuner Monster":                   0xa87524,
	"Toon Monster":                    0xa87524,
	"Gemini Monster":                  0xa87524,
	"Spirit Monster":                  0xa87524,
	"Union Effect Monster":            0xa87524,
	"Union Tuner Effect Monster":      0xa87524,
	"Ritual Monster":                  0x293cbd,
	"Ritual Effect Monster":           0x293cbd,
	"Fusion Monster":                  0x9115ee,
	"Synchro Monster":                 0xfcfcfc,
	"Synchro Pendulum Effect Monster": 0xfcfcfc,
	"Synchro Tuner Monster":           0xfcfcfc,
	"XYZ Monster":                     0x252525,
	"XYZ Pendulum Effect Monster":     0x252525,
	"Pendulum Effect Monster":         0x84b870,
	"Pendulum Flip Effect Monster":    0x84b870,
	"Pendulum Normal Monster":         0x84b870,
	"Pendulum Tuner Effect Monster":   0x84b870,
	"Pendulum Effect Fusion Monster":  0x84b870,
	"Link Monster":                    0x293cbd,
}

var nonMonsterColors = map[string]int{
	"Spell Card": 0x258b5c,
	"Trap Card":  0xc51a57,
	"Skill Card": 0x252525,
}

// cardEmbed renders the full card detail embed.
func cardEmbed(card *models.Card) *discordgo.MessageEmbed {
	if cardtext.IsMonster(card.Type) {
		return monsterEmbed(card)
	}
	return nonMonsterEmbed(card)
}

func monsterEmbed(card *models.Card) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: monsterColors[card.Type],
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: fmt.Sprintf("**%s**", card.Name),
				Value: fmt.Sprintf(
					"**Limit :** **OCG:** %s | **TCG:** %s\n**Type:** %s\n**Attribute:** %s\n**Level:** %d",
					card.BanOCG(), card.BanTCG(), card.Type, card.Attribute, card.Level,
				),
			},
			{
				Name:  fmt.Sprintf("[ %s %s ]", card.Race, cardtext.MonsterSuffixes[card.Type]),
				Value: card.Desc,
			},
			{Name: "ATK", Value: cardtext.Stat(card.ATK), Inline: true},
			{Name: "DEF", Value: cardtext.Stat(card.DEF), Inline: true},
		},
		Image: &discordgo.MessageEmbedImage{URL: card.ImageURL()},
	}
}

func nonMonsterEmbed(card *models.Card) *discordgo.MessageEmbed {
	color, ok := nonMonsterColors[card.Type]
	if !ok {
		color = embedColor
	}

	return &discordgo.MessageEmbed{
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("**%s**", card.Name),
				Value: fmt.Sprintf("**Type:** %s\n**Property:** %s", card.Type, card.Race),
			},
			{Name: "Effect", Value: card.Desc},
		},
		Image: &discordgo.MessageEmbedImage{URL: card.ImageURL()},
	}
}

// artEmbed renders only the card's cropped artwork.
func artEmbed(card *models.Card) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: embedColor,
		Title: fmt.Sprintf("**%s**", card.Name),
		Image: &discordgo.MessageEmbedImage{URL: card.ImageURLCropped()},
	}
}

func notFoundEmbed(query string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       notFoundColor,
		Description: fmt.Sprintf("**'%s' not found**", query),
		Image:       &discordgo.MessageEmbedImage{URL: notFoundImage},
	}
}

// listEmbed renders one page of a browse session.
func listEmbed(query string, view browse.PageView) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(view.Items))
	for i, card := range view.Items {
		lines = append(lines, fmt.Sprintf("%s. %s", view.Labels[i], card.Name))
	}

	return &discordgo.MessageEmbed{
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: fmt.Sprintf("%d card matches for ``%s`` (Page %d/%d)",
					view.Count, query, view.Number+1, view.Total),
				Value:  strings.Join(lines, "\n"),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "React with a number to see details for that card, or ⬅️ ➡️ to navigate pages",
		},
	}
}
