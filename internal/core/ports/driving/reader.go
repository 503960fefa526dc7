package driving

import "context"

// DocumentReader serves the read side of a stored document for the
// paired viewer pane.
type DocumentReader interface {
	// ReadURL returns a short-lived signed URL for the document bytes.
	ReadURL(ctx context.Context, documentID string) (string, error)

	// PageCount downloads the document and returns its page count.
	PageCount(ctx context.Context, documentID string) (int, error)
}
