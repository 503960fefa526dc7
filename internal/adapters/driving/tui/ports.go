// Package tui provides the interactive terminal user interface for
// paperchat. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Auth exposes the logged-in session.
	Auth driving.AuthService

	// Catalog is the document catalog.
	Catalog driving.DocumentCatalog

	// Reader serves signed URLs and page counts.
	Reader driving.DocumentReader

	// NewChat builds a session bound to one document.
	NewChat func(documentID string) driving.ChatSession

	// NewViewport builds fresh page/zoom state for the viewer pane.
	NewViewport func() driving.ViewportController

	// NewUploader builds an upload pipeline reporting to the observer.
	NewUploader func(observer driving.UploadObserver) driving.UploadOrchestrator
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalog
	}
	if p.NewChat == nil {
		return ErrMissingChatFactory
	}
	if p.NewViewport == nil {
		return ErrMissingViewportFactory
	}
	if p.NewUploader == nil {
		return ErrMissingUploaderFactory
	}
	return nil
}
