package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Transfers stream whole PDFs; give them more room than API calls.
const putTimeout = 5 * time.Minute

// Ensure ObjectStore implements the interface.
var _ driven.ObjectStore = (*ObjectStore)(nil)

// ObjectStore performs the raw byte transfer of the upload pipeline: a
// single PUT to the presigned destination. The grant already embeds the
// authorization, so no bearer header is attached.
type ObjectStore struct {
	http *http.Client
}

// NewObjectStore creates the presigned PUT client. client may be nil.
func NewObjectStore(client *http.Client) *ObjectStore {
	if client == nil {
		client = &http.Client{Timeout: putTimeout}
	}
	return &ObjectStore{http: client}
}

// Put transfers body to url with the given content type. One attempt;
// a failed transfer may leave partial data at the destination, which
// the pipeline surfaces as a stage failure.
func (o *ObjectStore) Put(ctx context.Context, url, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	logger.Debug("PUT %d bytes to storage", size)
	resp, err := o.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage put: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage put: status %d", resp.StatusCode)
	}
	return nil
}

// Fetch streams the object behind a granted read URL.
func (o *ObjectStore) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage get: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("storage get: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
