// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as a fallback when no data directory
// is available.
package memory

import (
	"context"
	"sync"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the session in process memory only.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save stores the session, replacing any existing one.
func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// Load returns the stored session, or domain.ErrNotFound if none.
func (s *SessionStore) Load(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, domain.ErrNotFound
	}
	snapshot := *s.session
	return &snapshot, nil
}

// Clear removes the stored session.
func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
