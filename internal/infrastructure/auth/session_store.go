package auth

import (
	"context"
	"sync"
	"time"
)

// Session is one live admin login.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore tracks live admin sessions. A token is only honored while
// its session is present here, so logout revokes tokens before they expire.
type SessionStore interface {
	// Create registers a session
	Create(ctx context.Context, session *Session) error

	// Get returns a live session, or nil when unknown or expired
	Get(ctx context.Context, id string) (*Session, error)

	// Delete revokes a session
	Delete(ctx context.Context, id string) error
}

// Ensure MemorySessionStore implements SessionStore
var _ SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore keeps sessions in process memory. Expired entries are
// reaped lazily on read. Suitable for single-instance deployments; use the
// Redis store when running more than one replica.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore creates a new MemorySessionStore
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create registers a session
func (s *MemorySessionStore) Create(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

// Get returns a live session, or nil when unknown or expired
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

// Delete revokes a session
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
