package driven

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// SessionStore persists the authenticated session between invocations.
type SessionStore interface {
	// Save stores the session, replacing any existing one.
	Save(ctx context.Context, session domain.Session) error

	// Load returns the stored session, or domain.ErrNotFound if none.
	Load(ctx context.Context) (*domain.Session, error)

	// Clear removes the stored session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
