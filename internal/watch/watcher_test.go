package watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		setupFile  bool
		setupDir   bool
		operation  fsnotify.Op
		wantUpload bool
	}{
		{
			name:       "new pdf",
			fileName:   "paper.pdf",
			setupFile:  true,
			operation:  fsnotify.Create,
			wantUpload: true,
		},
		{
			name:       "uppercase extension",
			fileName:   "PAPER.PDF",
			setupFile:  true,
			operation:  fsnotify.Create,
			wantUpload: true,
		},
		{
			name:      "write event ignored",
			fileName:  "paper.pdf",
			setupFile: true,
			operation: fsnotify.Write,
		},
		{
			name:      "remove event ignored",
			fileName:  "paper.pdf",
			operation: fsnotify.Remove,
		},
		{
			name:      "non-pdf skipped",
			fileName:  "notes.txt",
			setupFile: true,
			operation: fsnotify.Create,
		},
		{
			name:      "hidden file skipped",
			fileName:  ".partial.pdf",
			setupFile: true,
			operation: fsnotify.Create,
		},
		{
			name:      "directory skipped",
			fileName:  "archive.pdf",
			setupDir:  true,
			operation: fsnotify.Create,
		},
		{
			name:      "vanished file skipped",
			fileName:  "gone.pdf",
			operation: fsnotify.Create,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			eventPath := filepath.Join(dir, tt.fileName)

			if tt.setupDir {
				require.NoError(t, os.Mkdir(eventPath, 0755))
			} else if tt.setupFile {
				require.NoError(t, os.WriteFile(eventPath, []byte("%PDF-1.4 content"), 0644))
			}

			w := New(dir, nil)
			upload := w.handleEvent(fsnotify.Event{
				Name: eventPath,
				Op:   tt.operation,
			})

			if !tt.wantUpload {
				assert.Nil(t, upload)
				return
			}

			require.NotNil(t, upload)
			assert.Equal(t, tt.fileName, upload.Name)
			assert.Equal(t, eventPath, upload.Path)
			assert.Equal(t, int64(16), upload.SizeBytes)
			assert.Equal(t, domain.PDFContentType, upload.ContentType)
		})
	}
}

func TestHandleEvent_CombinedOps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "combined.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	w := New(dir, nil)
	upload := w.handleEvent(fsnotify.Event{
		Name: path,
		Op:   fsnotify.Create | fsnotify.Chmod,
	})

	require.NotNil(t, upload)
	assert.Equal(t, "combined.pdf", upload.Name)
}
