package provider

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrViewNotFound is returned for unknown or expired view sessions.
var ErrViewNotFound = errors.New("view session not found or expired")

// ViewSession is one open provider view. Its state is only touched by the owning view,
// but HTTP requests for it may overlap, so callers hold mu while using State.
type ViewSession struct {
	ID         string
	ProviderID string
	State      *ViewState

	mu        sync.Mutex
	lastSeen  time.Time
	done      chan struct{}
	closeOnce sync.Once
}

// Done is closed when the session is closed or expires; anything ticking on behalf of
// the view stops on it.
func (s *ViewSession) Done() <-chan struct{} {
	return s.done
}

func (s *ViewSession) release() {
	s.closeOnce.Do(func() { close(s.done) })
}

// With runs fn while holding the session lock.
func (s *ViewSession) With(fn func(*ViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.State)
}

// ViewStore keeps open view sessions in memory. Nothing here is persisted.
type ViewStore struct {
	mu       sync.Mutex
	sessions map[string]*ViewSession
	ttl      time.Duration
}

// NewViewStore returns a store that forgets sessions idle for longer than ttl.
func NewViewStore(ttl time.Duration) *ViewStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ViewStore{
		sessions: make(map[string]*ViewSession),
		ttl:      ttl,
	}
}

// Open registers a new session for state and returns it.
func (s *ViewStore) Open(state *ViewState, now time.Time) *ViewSession {
	session := &ViewSession{
		ID:         uuid.New().String(),
		ProviderID: state.Record.ID,
		State:      state,
		lastSeen:   now,
		done:       make(chan struct{}),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	s.sessions[session.ID] = session
	return session
}

// Get returns a live session and marks it as seen.
func (s *ViewStore) Get(id string, now time.Time) (*ViewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	if now.Sub(session.lastSeen) > s.ttl {
		delete(s.sessions, id)
		session.release()
		return nil, ErrViewNotFound
	}
	session.lastSeen = now
	return session, nil
}

// Close forgets a session.
func (s *ViewStore) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return ErrViewNotFound
	}
	delete(s.sessions, id)
	session.release()
	return nil
}

// Len is the number of sessions currently held.
func (s *ViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *ViewStore) sweepLocked(now time.Time) {
	for id, session := range s.sessions {
		if now.Sub(session.lastSeen) > s.ttl {
			delete(s.sessions, id)
			session.release()
		}
	}
}
