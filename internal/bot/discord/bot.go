// Package discord wires the bot's commands and the paginated result
// browser to Discord slash commands and message reactions.
package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/lookup"
	"github.com/whdzera/atem/internal/services"
)

type Bot struct {
	session  *discordgo.Session
	resolver *lookup.Resolver
	cards    *services.YGOProDeckService
	store    *browse.Store
	router   *browse.Router

	guildID    string
	maxResults int
	reactDelay time.Duration
}

func New(token string, resolver *lookup.Resolver, cards *services.YGOProDeckService, store *browse.Store, guildID string, maxResults int, reactDelay time.Duration) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessageReactions

	return &Bot{
		session:    session,
		resolver:   resolver,
		cards:      cards,
		store:      store,
		router:     browse.NewRouter(store, browse.DiscordScheme()),
		guildID:    guildID,
		maxResults: maxResults,
		reactDelay: reactDelay,
	}, nil
}

// Start opens the gateway connection and registers the slash commands.
// It returns once the bot is serving; Stop tears the connection down.
func (b *Bot) Start(ctx context.Context) error {
	b.session.AddHandler(b.onInteraction)
	b.session.AddHandler(b.onReactionAdd)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return err
	}

	log.Printf("Discord bot ready as %s", b.session.State.User.Username)
	return nil
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		log.Printf("[ERROR] Closing discord session: %v", err)
	}
}

// isSelf reports whether the given user is the bot account itself.
func (b *Bot) isSelf(userID string) bool {
	return b.session.State.User != nil && b.session.State.User.ID == userID
}

// ownerKey scopes a Discord user id into the shared session store.
func ownerKey(userID string) string {
	return "discord:" + userID
}

// interactionUser returns the invoking user for both guild and DM
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
