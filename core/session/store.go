package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one authenticated login against a remote host.
type Session struct {
	// ID is the opaque session identifier handed back to clients.
	ID string `json:"session_id"`
	// URL is the login URL the session was created against.
	URL string `json:"url"`
	// Cookies are the Set-Cookie values issued at login, replayed
	// verbatim on subsequent fetches.
	Cookies []string `json:"cookies"`
	// CreatedAt is the login timestamp.
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is when the session stops being usable.
	ExpiresAt time.Time `json:"expires_at"`
}

// New creates a session with a fresh id and the given time-to-live.
func New(url string, cookies []string, ttl time.Duration) Session {
	now := time.Now().UTC()
	return Session{
		ID:        uuid.NewString(),
		URL:       url,
		Cookies:   cookies,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the process-wide session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Put registers a session under its id.
func (st *Store) Put(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get returns a copy of the session with the given id, if present.
func (st *Store) Get(id string) (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Remove drops the session with the given id. Removing an unknown id
// is a no-op.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes every expired session and returns how many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.Expired() {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until the returned stop
// function is called. Stop blocks until the sweeper goroutine exits.
func (st *Store) StartSweeper(interval time.Duration, logger *zap.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ticker.C:
				if removed := st.Sweep(); removed > 0 {
					logger.Debug("Swept expired sessions", zap.Int("removed", removed))
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
		<-stopped
	}
}
