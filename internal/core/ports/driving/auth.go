package driving

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// AuthService manages the account session. Credentials are validated
// locally before any network call; violations are validation errors and
// nothing is mutated.
type AuthService interface {
	// Login exchanges credentials for a session and persists it.
	Login(ctx context.Context, email, password string) (*domain.Session, error)

	// Register creates an account. The user logs in separately.
	Register(ctx context.Context, name, email, password string) error

	// Logout clears the persisted session.
	Logout(ctx context.Context) error

	// Session returns the persisted session, or domain.ErrAuthRequired
	// if none is stored.
	Session(ctx context.Context) (*domain.Session, error)
}
