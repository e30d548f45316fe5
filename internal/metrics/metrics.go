// Package metrics provides Prometheus metrics for the Atem bot.
// Scrape these at /metrics on the status server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Command Metrics
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_commands_total",
			Help: "Total number of chat commands handled",
		},
		[]string{"platform", "command"},
	)

	CommandErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_command_errors_total",
			Help: "Commands that failed and were answered with an error notice",
		},
		[]string{"platform", "command"},
	)

	// Card API Metrics
	CardAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_cardapi_requests_total",
			Help: "Total number of ygoprodeck API requests",
		},
		[]string{"endpoint", "status"},
	)

	CardAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atem_cardapi_request_duration_seconds",
			Help:    "ygoprodeck API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CardCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_card_cache_hits_total",
			Help: "Card lookup cache hit count",
		},
	)

	CardCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_card_cache_misses_total",
			Help: "Card lookup cache miss count",
		},
	)

	// Matcher Metrics
	MatcherResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_matcher_resolutions_total",
			Help: "Name resolutions by outcome",
		},
		[]string{"outcome"}, // "substring", "fuzzy", "miss"
	)

	// Session Metrics
	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_sessions_created_total",
			Help: "Total number of browse sessions created",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "atem_sessions_active",
			Help: "Number of live browse sessions",
		},
	)

	SessionsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_sessions_expired_total",
			Help: "Browse sessions dropped after the idle timeout",
		},
	)

	StaleInteractionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_stale_interactions_total",
			Help: "Reactions ignored because no live session matched",
		},
	)

	ReactionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_reaction_events_total",
			Help: "Routed reaction events by resulting action",
		},
		[]string{"action"}, // "navigate", "select", "ignore"
	)

	AffordanceAttachFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_affordance_attach_failures_total",
			Help: "Failed attempts to attach a navigation or selection reaction",
		},
	)

	// Gemini Fallback Metrics
	GeminiRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "atem_gemini_requests_total",
			Help: "Total Gemini suggestion requests",
		},
	)

	GeminiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atem_gemini_errors_total",
			Help: "Gemini API errors by type",
		},
		[]string{"type"}, // "network", "api", "parse", "empty"
	)
)
