package browse

import (
	"context"
	"sync"
	"time"

	"github.com/whdzera/atem/internal/metrics"
	"github.com/whdzera/atem/internal/models"
)

const sweepInterval = time.Minute

// Store is the process-wide table of live browse sessions, keyed by
// platform-scoped user. It holds the only reference to each session;
// nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	pageSize int
	timeout  time.Duration
}

func NewStore(pageSize int, timeout time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		pageSize: pageSize,
		timeout:  timeout,
	}
}

// Create starts a browse session for owner, superseding any session
// the same user already had. Last query wins; there is no history.
func (st *Store) Create(owner, query string, results []models.Card) *Session {
	sess := newSession(owner, query, results, st.pageSize, time.Now().Add(st.timeout))

	st.mu.Lock()
	st.sessions[owner] = sess
	size := len(st.sessions)
	st.mu.Unlock()

	metrics.SessionsCreatedTotal.Inc()
	metrics.SessionsActive.Set(float64(size))
	return sess
}

// Get returns the owner's live session, dropping it lazily if the idle
// timeout has passed. Returns nil when there is nothing to resume.
func (st *Store) Get(owner string) *Session {
	st.mu.Lock()
	sess, ok := st.sessions[owner]
	st.mu.Unlock()
	if !ok {
		return nil
	}

	if sess.expired(time.Now()) {
		st.expire(owner, sess)
		return nil
	}
	return sess
}

// Touch extends a session's idle deadline after an accepted interaction.
func (st *Store) Touch(sess *Session) {
	sess.touch(time.Now().Add(st.timeout))
}

// Delete removes the owner's session if it is still the given one.
func (st *Store) Delete(owner string) {
	st.mu.Lock()
	delete(st.sessions, owner)
	size := len(st.sessions)
	st.mu.Unlock()
	metrics.SessionsActive.Set(float64(size))
}

func (st *Store) expire(owner string, sess *Session) {
	st.mu.Lock()
	if cur, ok := st.sessions[owner]; ok && cur == sess {
		delete(st.sessions, owner)
	}
	size := len(st.sessions)
	st.mu.Unlock()

	metrics.SessionsExpiredTotal.Inc()
	metrics.SessionsActive.Set(float64(size))
}

// Active reports the number of live sessions.
func (st *Store) Active() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Janitor sweeps expired sessions until the context is cancelled, so
// abandoned browses do not pin their result lists until the next read.
func (st *Store) Janitor(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.sweep(time.Now())
		}
	}
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	expired := 0
	for owner, sess := range st.sessions {
		if sess.expired(now) {
			delete(st.sessions, owner)
			expired++
		}
	}
	size := len(st.sessions)
	st.mu.Unlock()

	if expired > 0 {
		metrics.SessionsExpiredTotal.Add(float64(expired))
		metrics.SessionsActive.Set(float64(size))
	}
}
