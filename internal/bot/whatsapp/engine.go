// Package whatsapp implements the bot's WhatsApp command set behind a
// Transport interface. The gateway that bridges to the WhatsApp
// network lives outside this process; it delivers inbound messages to
// Engine.HandleMessage and sends replies through the Transport.
package whatsapp

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/whdzera/atem/internal/cardtext"
	"github.com/whdzera/atem/internal/lookup"
	"github.com/whdzera/atem/internal/metrics"
	"github.com/whdzera/atem/internal/services"
)

// Transport sends replies back through the WhatsApp gateway.
type Transport interface {
	SendText(ctx context.Context, to, text string) error
	SendMedia(ctx context.Context, to, imageURL, caption string) error
}

// Message is an inbound chat message as delivered by the gateway.
type Message struct {
	From  string // sender JID
	Body  string
	Group bool // message arrived in a group chat
	Self  bool // message was sent by the bot's own account
}

const helpText = `*Atem Bot*

:search <name> - card details with artwork
:card <name> - card details, text only
:list <name> - every matching card name
:ping - check the bot is alive
:info - about this bot

In groups you can also write ::card name:: anywhere in a message.`

const infoText = `*Atem bot Information*

*Name* : Atem
*Version* : 2.0.0
*Developer* : @whdzera
*Written* : Go`

var shorthandPattern = regexp.MustCompile(`::(.+?)::`)

type Engine struct {
	transport  Transport
	resolver   *lookup.Resolver
	cards      *services.YGOProDeckService
	gemini     *services.GeminiService
	maxResults int
}

func NewEngine(transport Transport, resolver *lookup.Resolver, cards *services.YGOProDeckService, gemini *services.GeminiService, maxResults int) *Engine {
	return &Engine{
		transport:  transport,
		resolver:   resolver,
		cards:      cards,
		gemini:     gemini,
		maxResults: maxResults,
	}
}

// HandleMessage routes one inbound message. Messages from the bot's
// own account are dropped so replies never re-trigger commands.
func (e *Engine) HandleMessage(ctx context.Context, msg Message) {
	if msg.Self {
		return
	}

	body := strings.TrimSpace(msg.Body)

	if strings.HasPrefix(body, ":") && !strings.HasPrefix(body, "::") {
		e.handleCommand(ctx, msg.From, body)
		return
	}

	if msg.Group {
		if m := shorthandPattern.FindStringSubmatch(body); m != nil {
			metrics.CommandsTotal.WithLabelValues("whatsapp", "shorthand").Inc()
			e.search(ctx, msg.From, strings.TrimSpace(m[1]))
		}
	}
}

func (e *Engine) handleCommand(ctx context.Context, from, body string) {
	command, args := splitCommand(body)
	metrics.CommandsTotal.WithLabelValues("whatsapp", command).Inc()

	switch command {
	case "help":
		e.reply(ctx, from, helpText)
	case "info":
		e.reply(ctx, from, infoText)
	case "ping":
		e.reply(ctx, from, "*Pong!*")
	case "card":
		if args == "" {
			e.reply(ctx, from, "Usage: :card <card name>")
			return
		}
		e.cardInfo(ctx, from, args)
	case "search":
		if args == "" {
			e.reply(ctx, from, "Usage: :search <card name>")
			return
		}
		e.search(ctx, from, args)
	case "list":
		if args == "" {
			e.reply(ctx, from, "Usage: :list <card name>")
			return
		}
		e.list(ctx, from, args)
	}
}

// splitCommand separates ":list dark magician" into "list" and
// "dark magician".
func splitCommand(body string) (string, string) {
	body = strings.TrimPrefix(body, ":")
	parts := strings.SplitN(body, " ", 2)
	command := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return command, ""
	}
	return command, strings.TrimSpace(parts[1])
}

func (e *Engine) reply(ctx context.Context, to, text string) {
	if err := e.transport.SendText(ctx, to, text); err != nil {
		log.Printf("[ERROR] Sending whatsapp message: %v", err)
	}
}

// cardInfo answers :card with a text-only rendition of the card.
func (e *Engine) cardInfo(ctx context.Context, from, query string) {
	card, err := e.resolver.ResolveCard(ctx, query)
	if err != nil {
		log.Printf("[ERROR] Resolving %q: %v", query, err)
		metrics.CommandErrorsTotal.WithLabelValues("whatsapp", "card").Inc()
		e.reply(ctx, from, "⚠️ An error occurred while searching.")
		return
	}
	if card == nil {
		e.notFound(ctx, from, query)
		return
	}
	e.reply(ctx, from, cardtext.Render(card))
}

// search answers :search with the artwork plus the card details as a
// caption.
func (e *Engine) search(ctx context.Context, from, query string) {
	card, err := e.resolver.ResolveCard(ctx, query)
	if err != nil {
		log.Printf("[ERROR] Resolving %q: %v", query, err)
		metrics.CommandErrorsTotal.WithLabelValues("whatsapp", "search").Inc()
		e.reply(ctx, from, "⚠️ An error occurred while searching.")
		return
	}
	if card == nil {
		e.notFound(ctx, from, query)
		return
	}

	if err := e.transport.SendMedia(ctx, from, card.ImageURL(), cardtext.Render(card)); err != nil {
		log.Printf("[ERROR] Sending whatsapp media: %v", err)
		e.reply(ctx, from, cardtext.Render(card))
	}
}

// list answers :list with matching card names, alphabetical.
func (e *Engine) list(ctx context.Context, from, query string) {
	result, err := e.cards.SearchByName(ctx, query, e.maxResults)
	if err != nil {
		log.Printf("[ERROR] Listing %q: %v", query, err)
		metrics.CommandErrorsTotal.WithLabelValues("whatsapp", "list").Inc()
		e.reply(ctx, from, "⚠️ An error occurred while searching.")
		return
	}
	if result == nil || len(result.Cards) == 0 {
		e.reply(ctx, from, fmt.Sprintf("*0 card matches for* %s\nTry again aibou..", query))
		return
	}

	names := make([]string, 0, len(result.Cards))
	for _, card := range result.Cards {
		names = append(names, card.Name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%d card matches for* %s\n\n", result.TotalCount, query)
	for i, name := range names {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
	}
	e.reply(ctx, from, strings.TrimRight(sb.String(), "\n"))
}

// notFound reports a miss, asking Gemini for a best guess when the
// fallback is configured.
func (e *Engine) notFound(ctx context.Context, from, query string) {
	if e.gemini != nil && e.gemini.IsEnabled() {
		suggestion, err := e.gemini.SuggestCard(ctx, query)
		if err == nil {
			e.reply(ctx, from, "*Card Not Found*\n\n[AI Help]\n"+suggestion)
			return
		}
		log.Printf("[ERROR] Gemini suggestion for %q: %v", query, err)
	}
	e.reply(ctx, from, fmt.Sprintf("*'%s' not found*", query))
}
