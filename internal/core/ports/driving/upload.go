package driving

import (
	"context"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// UploadObserver is notified after every stage transition, before the
// stage's network call is awaited. It runs on the uploading goroutine
// and must not block.
type UploadObserver func(task domain.UploadTask)

// UploadOrchestrator drives the four-stage ingestion pipeline for one
// file at a time. It is not reentrant: a second Upload while one is in
// flight fails with domain.ErrUploadInFlight.
type UploadOrchestrator interface {
	// Upload runs the pipeline to completion and returns the created
	// document. On failure it returns a *domain.StageError identifying
	// the failing stage; side effects of earlier stages are not rolled
	// back.
	Upload(ctx context.Context, file domain.FileUpload) (*domain.Document, error)

	// Task returns a copy of the active or last-finished task, or nil
	// if none has started.
	Task() *domain.UploadTask
}
