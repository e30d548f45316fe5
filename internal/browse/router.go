package browse

import (
	"log"

	"github.com/whdzera/atem/internal/metrics"
)

// ActionKind classifies what a routed interaction asks for.
type ActionKind int

const (
	ActionIgnore ActionKind = iota
	ActionNavigate
	ActionSelect
)

// Action is the router's verdict on one interaction event. Delta is
// ±1 for ActionNavigate; Index is the absolute result index for
// ActionSelect.
type Action struct {
	Kind  ActionKind
	Delta int
	Index int
}

var ignore = Action{Kind: ActionIgnore}

// Event is a platform-neutral interaction: a reaction or button press
// on a rendered page.
type Event struct {
	Actor   string // platform-scoped key of the interacting user
	Bot     bool   // the actor is the bot account itself
	Message string // message the interaction landed on
	Symbol  string // emoji name or callback token
}

// Scheme maps interaction symbols to affordances. Slots are in page
// order, so Slots[0] selects the first item on the page.
type Scheme struct {
	Prev  string
	Next  string
	Slots []string
}

// DiscordScheme uses keycap digit emojis (ten relabeled "0") and
// arrow reactions, matching what the adapter attaches to each page.
func DiscordScheme() Scheme {
	slots := make([]string, 10)
	for i := 0; i < 9; i++ {
		slots[i] = string(rune('1'+i)) + "⃣"
	}
	slots[9] = "0⃣"
	return Scheme{Prev: "⬅️", Next: "➡️", Slots: slots}
}

// CallbackScheme uses plain tokens, for platforms that deliver button
// presses as callback data instead of emoji reactions.
func CallbackScheme() Scheme {
	return Scheme{
		Prev:  "prev",
		Next:  "next",
		Slots: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	}
}

// Router turns interaction events into navigation and selection
// actions against the session store. Navigation is applied to the
// session before the action is returned; the adapter only re-renders.
type Router struct {
	store  *Store
	scheme Scheme
}

func NewRouter(store *Store, scheme Scheme) *Router {
	return &Router{store: store, scheme: scheme}
}

// Handle routes one interaction. Everything that does not line up — the
// bot's own reactions, other users poking someone else's browse, stale
// messages, expired sessions, symbols outside the scheme, empty slots —
// comes back as Ignore and mutates nothing.
func (r *Router) Handle(ev Event) Action {
	if ev.Bot {
		return r.counted(ignore)
	}

	sess := r.store.Get(ev.Actor)
	if sess == nil {
		// Unknown or timed out: the interaction is stale and no
		// longer serviced.
		log.Printf("[SESSION_EXPIRED] stale interaction from %s on message %s", ev.Actor, ev.Message)
		metrics.StaleInteractionsTotal.Inc()
		return r.counted(ignore)
	}
	if sess.Owner != ev.Actor {
		return r.counted(ignore)
	}
	if _, message := sess.Message(); message != ev.Message {
		return r.counted(ignore)
	}

	view := sess.Page()

	switch ev.Symbol {
	case r.scheme.Prev:
		if view.HasPrev && sess.GoTo(-1) {
			r.store.Touch(sess)
			return r.counted(Action{Kind: ActionNavigate, Delta: -1})
		}
		return r.counted(ignore)
	case r.scheme.Next:
		if view.HasNext && sess.GoTo(+1) {
			r.store.Touch(sess)
			return r.counted(Action{Kind: ActionNavigate, Delta: +1})
		}
		return r.counted(ignore)
	}

	for slot, symbol := range r.scheme.Slots {
		if symbol != ev.Symbol {
			continue
		}
		if slot >= len(view.Items) {
			return r.counted(ignore)
		}
		r.store.Touch(sess)
		return r.counted(Action{Kind: ActionSelect, Index: view.Number*sess.PageSize + slot})
	}

	return r.counted(ignore)
}

func (r *Router) counted(a Action) Action {
	switch a.Kind {
	case ActionNavigate:
		metrics.ReactionEventsTotal.WithLabelValues("navigate").Inc()
	case ActionSelect:
		metrics.ReactionEventsTotal.WithLabelValues("select").Inc()
	default:
		metrics.ReactionEventsTotal.WithLabelValues("ignore").Inc()
	}
	return a
}
