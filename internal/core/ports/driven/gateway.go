package driven

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// BackendGateway issues authenticated HTTP requests to the paperchat
// backend. Implementations normalise non-2xx responses to the message
// the backend carried; a 401 is surfaced as domain.ErrAuthInvalid.
type BackendGateway interface {
	// CreateUploadGrant requests a write destination for fileName.
	CreateUploadGrant(ctx context.Context, fileName string) (*domain.UploadGrant, error)

	// CreateDocument persists the catalog record for an uploaded object
	// and returns the document with its server-assigned id.
	CreateDocument(ctx context.Context, name string, sizeBytes int64, storageKey string) (*domain.Document, error)

	// TriggerIndexing asks the backend to index the stored object under
	// the given document id.
	TriggerIndexing(ctx context.Context, storageKey, documentID string) error

	// ListDocuments returns the full document set for the current user.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ReadURL returns a short-lived URL for fetching the PDF bytes.
	ReadURL(ctx context.Context, documentID string) (string, error)

	// ChatHistory returns the prior conversation for a document.
	ChatHistory(ctx context.Context, documentID string) ([]domain.ChatMessage, error)

	// SendChat submits a query and returns the confirmed exchange.
	SendChat(ctx context.Context, documentID, query string) (domain.ChatMessage, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*domain.Session, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, name, email, password string) error
}
