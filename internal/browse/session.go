// Package browse implements per-user paginated result browsing: the
// session store, the paginator and the reaction router shared by all
// platform adapters.
package browse

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whdzera/atem/internal/models"
)

// Session is one user's browse through a fixed result list. The result
// slice never changes after creation; only the page index, the tracked
// message and the idle deadline move, all under the session mutex so a
// double-tapped reaction cannot tear the page index.
type Session struct {
	ID       string
	Owner    string // platform-scoped user key, e.g. "discord:1234"
	Query    string
	Results  []models.Card
	PageSize int

	mu       sync.Mutex
	page     int
	channel  string
	message  string
	deadline time.Time
}

func newSession(owner, query string, results []models.Card, pageSize int, deadline time.Time) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Owner:    owner,
		Query:    query,
		Results:  results,
		PageSize: pageSize,
		deadline: deadline,
	}
}

// TotalPages is ceil(results/pageSize), at least 1 for non-empty results.
func (s *Session) TotalPages() int {
	return (len(s.Results) + s.PageSize - 1) / s.PageSize
}

// GoTo moves the page by delta (only ±1 is meaningful) and reports
// whether the page actually changed. Moves past either boundary are
// no-ops.
func (s *Session) GoTo(delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.page + delta
	if next < 0 || next > s.TotalPages()-1 {
		return false
	}
	s.page = next
	return true
}

// SetMessage records the rendered message this session is currently
// attached to. Reactions on any other message are inert.
func (s *Session) SetMessage(channel, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channel = channel
	s.message = message
}

// Message returns the channel and message the session is attached to.
func (s *Session) Message() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel, s.message
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.deadline)
}

// touch pushes the idle deadline out after an accepted interaction.
func (s *Session) touch(deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deadline = deadline
}
