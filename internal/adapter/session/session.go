package session

import (
	"log/slog"
	"sync"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
)

var _ port.SessionWatcher = (*Store)(nil)

// Store holds the process-wide auth session as an explicit observable
// object: every write broadcasts the new session to all subscribers,
// on the writer's goroutine, in subscription order. Components read
// through Current or resync via Subscribe instead of ambient globals.
type Store struct {
	mu      sync.Mutex
	current domain.Session
	subs    []func(domain.Session)
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set stores the session and broadcasts it.
func (s *Store) Set(sess domain.Session) {
	const op = "Store.Set"

	s.mu.Lock()
	s.current = sess
	subs := make([]func(domain.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	slog.Debug("session changed", "op", op, "signedIn", sess.SignedIn())
	for _, fn := range subs {
		fn(sess)
	}
}

// Clear signs out: stores the zero session and broadcasts it.
func (s *Store) Clear() {
	s.Set(domain.Session{})
}

// Subscribe registers a listener for future writes. It does not replay
// the current value; callers that need it read Current first.
func (s *Store) Subscribe(fn func(domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
