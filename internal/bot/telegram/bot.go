// Package telegram wires the bot's commands and the paginated result
// browser to Telegram commands and inline keyboard callbacks.
package telegram

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/cardtext"
	"github.com/whdzera/atem/internal/lookup"
	"github.com/whdzera/atem/internal/metrics"
	"github.com/whdzera/atem/internal/services"
)

const helpText = `*Atem Bot*

/card <name> - search a card by name
/search <name> - alias of /card
/list <name> - browse every card matching a name
/random - a random card
/ping - check the bot is alive
/info - about this bot

You can also write ` + "`::card name::`" + ` anywhere in a message.`

const infoText = `*Atem bot Information*

*Name*      : Atem
*Version*   : 2.0.0
*Developer* : [@whdzera](https://github.com/whdzera)
*Written*   : Go (telegram-bot-api)`

// shorthandPattern matches the ::card name:: inline query form.
var shorthandPattern = regexp.MustCompile(`::(.+?)::`)

type Bot struct {
	api      *tgbotapi.BotAPI
	resolver *lookup.Resolver
	cards    *services.YGOProDeckService
	store    *browse.Store
	router   *browse.Router

	maxResults int
}

func New(token string, resolver *lookup.Resolver, cards *services.YGOProDeckService, store *browse.Store, maxResults int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Bot{
		api:        api,
		resolver:   resolver,
		cards:      cards,
		store:      store,
		router:     browse.NewRouter(store, browse.CallbackScheme()),
		maxResults: maxResults,
	}, nil
}

// Start begins long polling for updates. It returns once the update
// loop is running; the loop stops when ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := b.api.GetUpdatesChan(cfg)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	go func() {
		for update := range updates {
			b.onUpdate(update)
		}
	}()

	log.Printf("Telegram bot ready as @%s", b.api.Self.UserName)
	return nil
}

func (b *Bot) onUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.onCallback(update.CallbackQuery)
	case update.Message != nil:
		b.onMessage(update.Message)
	}
}

// ownerKey scopes a Telegram user id into the shared session store.
func ownerKey(userID int64) string {
	return "telegram:" + strconv.FormatInt(userID, 10)
}

func (b *Bot) onMessage(msg *tgbotapi.Message) {
	if msg.From == nil || msg.From.IsBot {
		return
	}

	if msg.IsCommand() {
		b.onCommand(msg)
		return
	}

	if m := shorthandPattern.FindStringSubmatch(msg.Text); m != nil {
		metrics.CommandsTotal.WithLabelValues("telegram", "shorthand").Inc()
		b.sendCard(msg.Chat.ID, strings.TrimSpace(m[1]))
	}
}

func (b *Bot) onCommand(msg *tgbotapi.Message) {
	command := msg.Command()
	args := strings.TrimSpace(msg.CommandArguments())
	metrics.CommandsTotal.WithLabelValues("telegram", command).Inc()

	switch command {
	case "start", "help":
		b.sendMarkdown(msg.Chat.ID, helpText)
	case "info":
		b.sendMarkdown(msg.Chat.ID, infoText)
	case "ping":
		b.sendMarkdown(msg.Chat.ID, "*Pong!*")
	case "random":
		b.sendRandom(msg.Chat.ID)
	case "card", "search":
		if args == "" {
			b.sendMarkdown(msg.Chat.ID, "Usage: /card <card name>")
			return
		}
		b.sendCard(msg.Chat.ID, args)
	case "list":
		if args == "" {
			b.sendMarkdown(msg.Chat.ID, "Usage: /list <card name>")
			return
		}
		b.sendList(msg.Chat.ID, msg.From.ID, args)
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("[ERROR] Sending telegram message: %v", err)
	}
}

// sendCardPhoto posts the card image with the detail caption, falling
// back to a plain text message when the upload is rejected.
func (b *Bot) sendCardPhoto(chatID int64, imageURL, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(imageURL))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("[ERROR] Sending telegram photo: %v", err)
		b.sendMarkdown(chatID, caption)
	}
}

func (b *Bot) sendCard(chatID int64, query string) {
	card, err := b.resolver.ResolveCard(context.Background(), query)
	if err != nil {
		log.Printf("[ERROR] Resolving %q: %v", query, err)
		metrics.CommandErrorsTotal.WithLabelValues("telegram", "card").Inc()
		b.sendMarkdown(chatID, "⚠️ An error occurred while searching.")
		return
	}
	if card == nil {
		b.sendCardPhoto(chatID, notFoundImage, fmt.Sprintf("*'%s' not found*", query))
		return
	}
	b.sendCardPhoto(chatID, card.ImageURL(), cardtext.Render(card))
}

func (b *Bot) sendRandom(chatID int64) {
	card, err := b.cards.RandomCard(context.Background())
	if err != nil || card == nil {
		log.Printf("[ERROR] Fetching random card: %v", err)
		metrics.CommandErrorsTotal.WithLabelValues("telegram", "random").Inc()
		b.sendMarkdown(chatID, "⚠️ Failed to get random card")
		return
	}
	b.sendCardPhoto(chatID, card.ImageURL(), cardtext.Render(card))
}

func (b *Bot) sendList(chatID, userID int64, query string) {
	result, err := b.cards.SearchByName(context.Background(), query, b.maxResults)
	if err != nil {
		log.Printf("[ERROR] Listing %q: %v", query, err)
		metrics.CommandErrorsTotal.WithLabelValues("telegram", "list").Inc()
		b.sendMarkdown(chatID, "⚠️ An error occurred while searching.")
		return
	}
	if result == nil || len(result.Cards) == 0 {
		b.sendMarkdown(chatID, fmt.Sprintf("*0 card matches for* `%s`\nTry again aibou..", query))
		return
	}

	sess := b.store.Create(ownerKey(userID), query, result.Cards)
	view := sess.Page()

	msg := tgbotapi.NewMessage(chatID, listText(sess.Query, view))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = listKeyboard(view)

	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("[ERROR] Sending list message: %v", err)
		return
	}
	sess.SetMessage(strconv.FormatInt(chatID, 10), strconv.Itoa(sent.MessageID))
}

// onCallback routes an inline keyboard press. Navigation edits the
// list message in place, so the message id and the session stay bound.
func (b *Bot) onCallback(cq *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			log.Printf("[ERROR] Answering callback: %v", err)
		}
	}()

	if cq.Message == nil {
		return
	}

	owner := ownerKey(cq.From.ID)
	action := b.router.Handle(browse.Event{
		Actor:   owner,
		Bot:     cq.From.IsBot,
		Message: strconv.Itoa(cq.Message.MessageID),
		Symbol:  cq.Data,
	})

	switch action.Kind {
	case browse.ActionNavigate:
		b.editPage(cq.Message.Chat.ID, cq.Message.MessageID, owner)
	case browse.ActionSelect:
		b.showSelection(cq.Message.Chat.ID, owner, action.Index)
	}
}

func (b *Bot) editPage(chatID int64, messageID int, owner string) {
	sess := b.store.Get(owner)
	if sess == nil {
		return
	}

	view := sess.Page()
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, listText(sess.Query, view), listKeyboard(view))
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("[ERROR] Editing list message: %v", err)
	}
}

func (b *Bot) showSelection(chatID int64, owner string, index int) {
	sess := b.store.Get(owner)
	if sess == nil || index < 0 || index >= len(sess.Results) {
		return
	}
	name := sess.Results[index].Name

	card, err := b.cards.CardByName(context.Background(), name)
	if err != nil {
		log.Printf("[ERROR] Fetching card details for %q: %v", name, err)
		b.sendMarkdown(chatID, "⚠️ Error fetching card details.")
		return
	}
	if card == nil {
		b.sendMarkdown(chatID, "Could not find detailed information for "+name)
		return
	}
	b.sendCardPhoto(chatID, card.ImageURL(), cardtext.Render(card))
}
