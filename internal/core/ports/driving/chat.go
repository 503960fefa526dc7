package driving

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// ChatSession manages one conversation bound to a fixed document id.
type ChatSession interface {
	// DocumentID returns the document this session is bound to.
	DocumentID() string

	// Hydrate fetches prior history and replaces local state. It runs
	// once when a session opens; Loading reports true while it is
	// pending so callers render a placeholder, not an empty history.
	Hydrate(ctx context.Context) error

	// Send appends an optimistic echo synchronously, issues the query,
	// and on success atomically replaces the echo with the confirmed
	// message. On failure the echo stays in history unanswered and the
	// error is returned. An empty (trimmed) query fails with
	// domain.ErrEmptyQuery; a Send while another is pending fails with
	// domain.ErrSendInFlight.
	Send(ctx context.Context, query string) (domain.ChatMessage, error)

	// History returns a snapshot of the conversation in order.
	History() []domain.ChatMessage

	// Loading reports whether hydration is still pending.
	Loading() bool

	// Sending reports whether a send is awaiting its answer.
	Sending() bool
}
