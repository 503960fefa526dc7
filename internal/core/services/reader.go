package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Ensure ReaderService implements the DocumentReader interface.
var _ driving.DocumentReader = (*ReaderService)(nil)

// ReaderService serves the read side of stored documents: signed URLs
// and local page counts for the viewer pane.
type ReaderService struct {
	gateway driven.BackendGateway
	objects driven.ObjectStore
	pages   driven.PageCounter
}

// NewReaderService creates a new document reader.
func NewReaderService(
	gateway driven.BackendGateway,
	objects driven.ObjectStore,
	pages driven.PageCounter,
) *ReaderService {
	return &ReaderService{
		gateway: gateway,
		objects: objects,
		pages:   pages,
	}
}

// ReadURL returns a short-lived signed URL for the document bytes.
func (s *ReaderService) ReadURL(ctx context.Context, documentID string) (string, error) {
	url, err := s.gateway.ReadURL(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("fetching read url: %w", err)
	}
	return url, nil
}

// PageCount downloads the document to a temporary file and counts its
// pages. The temporary copy is removed before returning.
func (s *ReaderService) PageCount(ctx context.Context, documentID string) (int, error) {
	url, err := s.ReadURL(ctx, documentID)
	if err != nil {
		return 0, err
	}

	body, err := s.objects.Fetch(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("downloading document: %w", err)
	}
	defer body.Close()

	tmp, err := os.CreateTemp("", "paperchat-*.pdf")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temp file: %w", err)
	}

	count, err := s.pages.PageCount(ctx, tmp.Name())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}

	logger.Debug("Document %s has %d pages", documentID, count)
	return count, nil
}
