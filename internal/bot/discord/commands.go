package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/whdzera/atem/internal/metrics"
)

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{Name: "info", Description: "Show information about Atem Bot"},
		{Name: "ping", Description: "Check bot latency"},
		{Name: "random", Description: "Get a random Yu-Gi-Oh! card"},
		{
			Name:        "search",
			Description: "Search Yu-Gi-Oh! card information",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Enter card name to search",
					Required:    true,
				},
			},
		},
		{
			Name:        "list",
			Description: "Search Yu-Gi-Oh! cards by name",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Enter card name to search",
					Required:    true,
				},
			},
		},
		{
			Name:        "art",
			Description: "Search Yu-Gi-Oh! card artwork",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "name",
					Description: "Search artwork by card name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "input",
							Description: "Enter card name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "id",
					Description: "Search artwork by card ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "input",
							Description: "Enter card ID",
							Required:    true,
						},
					},
				},
			},
		},
	}

	appID := b.session.State.User.ID
	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(appID, b.guildID, cmd); err != nil {
			return fmt.Errorf("failed to register /%s: %w", cmd.Name, err)
		}
	}
	return nil
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	metrics.CommandsTotal.WithLabelValues("discord", data.Name).Inc()

	switch data.Name {
	case "info":
		b.handleInfo(i)
	case "ping":
		b.handlePing(i)
	case "random":
		b.handleRandom(i)
	case "search":
		b.handleSearch(i, data.Options[0].StringValue())
	case "list":
		b.handleList(i, data.Options[0].StringValue())
	case "art":
		sub := data.Options[0]
		b.handleArt(i, sub.Name, sub.Options[0].StringValue())
	}
}

func (b *Bot) deferReply(i *discordgo.InteractionCreate) error {
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (b *Bot) editText(i *discordgo.InteractionCreate, text string) {
	if _, err := b.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &text,
	}); err != nil {
		log.Printf("[ERROR] Editing interaction response: %v", err)
	}
}

func (b *Bot) editEmbed(i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	content := ""
	if _, err := b.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		log.Printf("[ERROR] Editing interaction response: %v", err)
	}
}

func (b *Bot) commandFailed(i *discordgo.InteractionCreate, command string, err error) {
	log.Printf("[ERROR_API : %s] %s command failed: %v", time.Now().Format(time.RFC3339), command, err)
	metrics.CommandErrorsTotal.WithLabelValues("discord", command).Inc()
	b.editText(i, "⚠️ An error occurred while processing the command.")
}

func (b *Bot) handleInfo(i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}
	b.editEmbed(i, &discordgo.MessageEmbed{
		Color: embedColor,
		Title: "**Atem bot Information**",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "details",
				Value: "**Name**      : Atem\n" +
					"**Version**   : 2.0.0\n" +
					"**Developer** : [@whdzera](https://github.com/whdzera)\n" +
					"**Written**   : Go (discordgo)",
			},
		},
	})
}

func (b *Bot) handlePing(i *discordgo.InteractionCreate) {
	start := time.Now()
	if err := b.deferReply(i); err != nil {
		return
	}
	latency := time.Since(start).Milliseconds()
	b.editEmbed(i, &discordgo.MessageEmbed{
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "**Pong!**", Value: fmt.Sprintf("Latency: %dms", latency), Inline: true},
		},
	})
}

func (b *Bot) handleRandom(i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	card, err := b.cards.RandomCard(context.Background())
	if err != nil {
		b.commandFailed(i, "random", err)
		return
	}
	if card == nil {
		b.editText(i, "⚠️ Failed to get random card")
		return
	}
	b.editEmbed(i, cardEmbed(card))
}

func (b *Bot) handleSearch(i *discordgo.InteractionCreate, query string) {
	if err := b.deferReply(i); err != nil {
		return
	}

	card, err := b.resolver.ResolveCard(context.Background(), query)
	if err != nil {
		b.commandFailed(i, "search", err)
		return
	}
	if card == nil {
		b.editEmbed(i, notFoundEmbed(query))
		return
	}
	b.editEmbed(i, cardEmbed(card))
}

func (b *Bot) handleArt(i *discordgo.InteractionCreate, mode, input string) {
	if err := b.deferReply(i); err != nil {
		return
	}

	ctx := context.Background()
	switch mode {
	case "id":
		found, err := b.cards.CardByID(ctx, input)
		if err != nil {
			b.commandFailed(i, "art", err)
			return
		}
		if found == nil {
			b.editEmbed(i, notFoundEmbed("ID '"+input+"'"))
			return
		}
		b.editEmbed(i, artEmbed(found))
	default:
		found, err := b.resolver.ResolveCard(ctx, input)
		if err != nil {
			b.commandFailed(i, "art", err)
			return
		}
		if found == nil {
			b.editEmbed(i, notFoundEmbed(input))
			return
		}
		b.editEmbed(i, artEmbed(found))
	}
}

func (b *Bot) handleList(i *discordgo.InteractionCreate, query string) {
	if err := b.deferReply(i); err != nil {
		return
	}

	result, err := b.cards.SearchByName(context.Background(), query, b.maxResults)
	if err != nil {
		b.commandFailed(i, "list", err)
		return
	}
	if result == nil || len(result.Cards) == 0 {
		b.editEmbed(i, &discordgo.MessageEmbed{
			Color: embedColor,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   fmt.Sprintf("0 card matches for ``%s``", query),
					Value:  "Try again aibou..",
					Inline: true,
				},
			},
		})
		return
	}

	user := interactionUser(i)
	sess := b.store.Create(ownerKey(user.ID), query, result.Cards)
	view := sess.Page()

	msg, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{listEmbed(sess.Query, view)},
	})
	if err != nil {
		b.commandFailed(i, "list", err)
		return
	}

	sess.SetMessage(i.ChannelID, msg.ID)
	b.attachReactions(i.ChannelID, msg.ID, view)
}
