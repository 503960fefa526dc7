package driven

import "context"

// TokenProvider supplies the bearer token for authenticated backend
// calls. The usual implementation reads the persisted session.
type TokenProvider interface {
	// GetToken returns the current bearer token, or "" when no session
	// is stored (requests then go out unauthenticated and the backend
	// answers 401).
	GetToken(ctx context.Context) (string, error)
}
