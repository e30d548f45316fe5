package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/metrics"
)

func (b *Bot) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	action := b.router.Handle(browse.Event{
		Actor:   ownerKey(r.UserID),
		Bot:     b.isSelf(r.UserID),
		Message: r.MessageID,
		Symbol:  r.Emoji.Name,
	})

	switch action.Kind {
	case browse.ActionNavigate:
		b.renderPage(r.ChannelID, ownerKey(r.UserID))
	case browse.ActionSelect:
		b.showSelection(r.ChannelID, ownerKey(r.UserID), action.Index)
	}
}

// renderPage replaces the session's list message with the current page.
// The old message is deleted rather than edited so the reaction set
// always matches the page being shown.
func (b *Bot) renderPage(channelID, owner string) {
	sess := b.store.Get(owner)
	if sess == nil {
		return
	}

	oldChannel, oldMessage := sess.Message()
	if oldMessage != "" {
		if err := b.session.ChannelMessageDelete(oldChannel, oldMessage); err != nil {
			log.Printf("[ERROR] Deleting list message %s: %v", oldMessage, err)
		}
	}

	view := sess.Page()
	msg, err := b.session.ChannelMessageSendEmbed(channelID, listEmbed(sess.Query, view))
	if err != nil {
		log.Printf("[ERROR] Sending list page: %v", err)
		return
	}

	sess.SetMessage(channelID, msg.ID)
	b.attachReactions(channelID, msg.ID, view)
}

// showSelection fetches full details for the chosen result and posts
// them as a new message, leaving the list message in place.
func (b *Bot) showSelection(channelID, owner string, index int) {
	sess := b.store.Get(owner)
	if sess == nil || index < 0 || index >= len(sess.Results) {
		return
	}
	name := sess.Results[index].Name

	card, err := b.cards.CardByName(context.Background(), name)
	if err != nil {
		log.Printf("[ERROR] Fetching card details for %q: %v", name, err)
		if _, err := b.session.ChannelMessageSend(channelID, "⚠️ Error fetching card details."); err != nil {
			log.Printf("[ERROR] Sending error notice: %v", err)
		}
		return
	}
	if card == nil {
		if _, err := b.session.ChannelMessageSend(channelID, "Could not find detailed information for "+name); err != nil {
			log.Printf("[ERROR] Sending error notice: %v", err)
		}
		return
	}

	if _, err := b.session.ChannelMessageSendEmbed(channelID, cardEmbed(card)); err != nil {
		log.Printf("[ERROR] Sending card details: %v", err)
	}
}

// attachReactions seeds the navigation and selection reactions on a
// list message. Attaches are paced to stay under the reaction rate
// limit; a failed attach is logged and skipped so the rest of the row
// still appears.
func (b *Bot) attachReactions(channelID, messageID string, view browse.PageView) {
	scheme := browse.DiscordScheme()

	symbols := make([]string, 0, len(view.Items)+2)
	if view.HasPrev {
		symbols = append(symbols, scheme.Prev)
	}
	if view.HasNext {
		symbols = append(symbols, scheme.Next)
	}
	for i := range view.Items {
		symbols = append(symbols, scheme.Slots[i])
	}

	for _, emoji := range symbols {
		if err := b.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
			log.Printf("[ERROR] Attaching reaction %s to %s: %v", emoji, messageID, err)
			metrics.AffordanceAttachFailures.Inc()
			continue
		}
		time.Sleep(b.reactDelay)
	}
}
