// Package upload provides the PDF upload view component for the TUI.
package upload

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui/messages"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui/styles"
	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
)

// View is the upload view: a path prompt plus live pipeline progress.
type View struct {
	styles      *styles.Styles
	keys        *keymap.KeyMap
	newUploader func(observer driving.UploadObserver) driving.UploadOrchestrator

	input   *input.QueryInput
	spinner spinner.Model

	uploading  bool
	progress   []string
	progressCh chan domain.UploadTask
	done       *domain.Document
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new upload view.
func NewView(
	s *styles.Styles,
	newUploader func(observer driving.UploadObserver) driving.UploadOrchestrator,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		newUploader: newUploader,
		input:       input.NewQueryInput(s, "Path to a PDF file..."),
		spinner:     sp,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Reset clears the view for a fresh upload.
func (v *View) Reset() {
	v.input.Reset()
	v.uploading = false
	v.progress = nil
	v.done = nil
	v.err = nil
}

// startUpload launches the pipeline. Stage transitions stream through
// progressCh; awaitProgress re-arms itself until the channel closes.
func (v *View) startUpload(path string) tea.Cmd {
	file, err := describeFile(path)
	if err != nil {
		v.err = err
		return nil
	}

	v.uploading = true
	v.progress = nil
	v.done = nil
	v.err = nil
	v.progressCh = make(chan domain.UploadTask, 8)

	ch := v.progressCh
	uploader := v.newUploader(func(task domain.UploadTask) {
		ch <- task
	})

	run := func() tea.Msg {
		defer close(ch)
		doc, err := uploader.Upload(context.Background(), *file)
		return messages.UploadFinished{Document: doc, Err: err}
	}

	return tea.Batch(run, v.awaitProgress(), v.spinner.Tick)
}

// awaitProgress waits for the next stage transition.
func (v *View) awaitProgress() tea.Cmd {
	ch := v.progressCh
	return func() tea.Msg {
		task, ok := <-ch
		if !ok {
			return nil
		}
		return messages.UploadProgressed{Task: task}
	}
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.SetWidth(msg.Width)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.UploadProgressed:
		if msg.Task.Err == nil {
			v.progress = append(v.progress, fmt.Sprintf("%s... %s", msg.Task.Stage, msg.Task.ProgressLabel))
		}
		return v, v.awaitProgress()

	case messages.UploadFinished:
		v.uploading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.done = msg.Document
		}
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keys.Back):
		if !v.uploading {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		return v, nil

	case keymap.Matches(keyStr, v.keys.Select):
		if v.uploading || v.newUploader == nil {
			return v, nil
		}
		path := strings.TrimSpace(v.input.Value())
		if path == "" {
			return v, nil
		}
		return v, v.startUpload(path)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the upload view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Upload a PDF"))
	b.WriteString("\n\n")

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	for _, line := range v.progress {
		b.WriteString(v.styles.Muted.Render("  " + line))
		b.WriteString("\n")
	}

	if v.uploading {
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Muted.Render(" uploading..."))
		b.WriteString("\n")
	}

	if v.done != nil {
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Uploaded %s as document %s", v.done.Name, v.done.ID)))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.UploadHelp())))

	return b.String()
}

// describeFile stats a local file and builds its upload descriptor.
func describeFile(path string) (*domain.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &domain.FileUpload{
		Name:        filepath.Base(path),
		Path:        path,
		SizeBytes:   info.Size(),
		ContentType: contentType,
	}, nil
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.ready = true
}

// Uploading reports whether a pipeline run is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Progress returns the stage lines reported so far.
func (v *View) Progress() []string {
	return v.progress
}

// Done returns the uploaded document, if the last run succeeded.
func (v *View) Done() *domain.Document {
	return v.done
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
