// Package watch monitors a local folder and uploads PDFs as they appear.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Watcher uploads PDF files dropped into a watched directory.
type Watcher struct {
	dir     string
	uploads driving.UploadOrchestrator
}

// New creates a watcher for the given directory.
func New(dir string, uploads driving.UploadOrchestrator) *Watcher {
	return &Watcher{
		dir:     dir,
		uploads: uploads,
	}
}

// Run watches the directory until the context is cancelled.
// Uploads are processed one at a time, in event order.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	logger.Info("Watching %s for PDFs", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			file := w.handleEvent(event)
			if file == nil {
				continue
			}
			logger.Info("Uploading %s", file.Name)
			doc, err := w.uploads.Upload(ctx, *file)
			if err != nil {
				logger.Error("Upload of %s failed: %v", file.Name, err)
				continue
			}
			logger.Info("Uploaded %s as document %s", file.Name, doc.ID)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// handleEvent converts a filesystem event into an upload candidate.
// Returns nil for events that should not trigger an upload.
func (w *Watcher) handleEvent(event fsnotify.Event) *domain.FileUpload {
	// Only newly created files; writes fire repeatedly while a file
	// is still being copied in.
	if !event.Has(fsnotify.Create) {
		return nil
	}

	name := filepath.Base(event.Name)
	if isHidden(name) {
		return nil
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return nil
	}

	return &domain.FileUpload{
		Name:        name,
		Path:        event.Name,
		SizeBytes:   info.Size(),
		ContentType: domain.PDFContentType,
	}
}

// isHidden reports whether the file name is a dotfile.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
