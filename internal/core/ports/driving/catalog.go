package driving

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// DocumentCatalog holds the visible set of documents for the current
// user. It is mutated only by Load (hydration) and Append (successful
// upload); no deletion is in scope.
type DocumentCatalog interface {
	// Load fetches the full set from the backend and replaces local
	// state. On failure the catalog is left unchanged.
	Load(ctx context.Context) error

	// Append inserts a document at the end. The caller guarantees the
	// id is new; no de-duplication is performed.
	Append(doc domain.Document)

	// Documents returns a snapshot of the catalog in insertion order.
	Documents() []domain.Document
}
