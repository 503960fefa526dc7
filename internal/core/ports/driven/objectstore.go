package driven

import (
	"context"
	"io"
)

// ObjectStore moves raw bytes through backend-granted URLs. The
// presigned contract allows the client a single whole-object PUT and a
// GET of a granted read URL; there is no listing or deleting.
type ObjectStore interface {
	// Put transfers body to url with the given content type. A non-2xx
	// response is an error. The destination may hold partial data after
	// a failed Put; no retry is attempted.
	Put(ctx context.Context, url, contentType string, body io.Reader, size int64) error

	// Fetch streams the object behind a granted read URL. The caller
	// closes the returned reader.
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
