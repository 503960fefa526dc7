// Package auth provides token providers backed by the persisted session.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
)

// Ensure SessionTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*SessionTokenProvider)(nil)

// SessionTokenProvider reads the bearer token from the stored session.
// Tokens don't expire client-side, so no refresh logic is needed; the
// backend answers 401 when a token goes stale.
type SessionTokenProvider struct {
	sessions driven.SessionStore
}

// NewSessionTokenProvider creates a token provider backed by the session store.
func NewSessionTokenProvider(sessions driven.SessionStore) *SessionTokenProvider {
	return &SessionTokenProvider{sessions: sessions}
}

// GetToken returns the persisted session token.
// Returns domain.ErrAuthRequired when no session is stored.
func (p *SessionTokenProvider) GetToken(ctx context.Context) (string, error) {
	session, err := p.sessions.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrAuthRequired
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return session.Token, nil
}
