package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout is how long an untouched session is kept.
const DefaultIdleTimeout = 30 * time.Minute

type slot struct {
	editor  *Editor
	touched time.Time
}

// Store keeps one Editor per session id. Sessions idle for longer than the
// store's timeout are forgotten.
type Store struct {
	mu       sync.Mutex
	idle     time.Duration
	now      func() time.Time
	sessions map[string]*slot
}

// NewStore creates an empty store. A non-positive idle uses
// DefaultIdleTimeout.
func NewStore(idle time.Duration) *Store {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Store{
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*slot),
	}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Do runs fn with the editor of id, creating it on first use. A session
// created for a call whose fn fails is not kept. The store lock is held
// while fn runs, so fn must not call back into the store.
func (s *Store) Do(id string, fn func(e *Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	sl, ok := s.sessions[id]
	if !ok {
		sl = &slot{editor: NewEditor()}
	}
	err := fn(sl.editor)
	if ok || err == nil {
		sl.touched = now
		s.sessions[id] = sl
	}
	return err
}

// Lookup runs fn with the editor of id without creating a session. Unknown
// or expired ids get a blank editor that is discarded afterwards.
func (s *Store) Lookup(id string, fn func(e *Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sl, ok := s.sessions[id]
	if ok && now.Sub(sl.touched) > s.idle {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		return fn(NewEditor())
	}
	sl.touched = now
	return fn(sl.editor)
}

// sweep drops idle sessions. Callers hold s.mu.
func (s *Store) sweep(now time.Time) {
	for id, sl := range s.sessions {
		if now.Sub(sl.touched) > s.idle {
			delete(s.sessions, id)
		}
	}
}

// Drop forgets the session id.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
