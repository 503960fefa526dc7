// Package chat provides the conversation view component for the TUI.
package chat

import (
	"context"
	"fmt"
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

// View is the conversation view for one document, paired with the
// page/zoom state of the viewer pane.
type View struct {
	styles      *styles.Styles
	keys        *keymap.KeyMap
	newSession  func(documentID string) driving.ChatSession
	newViewport func() driving.ViewportController
	reader      driving.DocumentReader

	document *domain.Document
	session  driving.ChatSession
	viewport driving.ViewportController
	input    *input.QueryInput
	spinner  spinner.Model

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new chat view. newViewport builds fresh page/zoom
// state per document.
func NewView(
	s *styles.Styles,
	newSession func(documentID string) driving.ChatSession,
	newViewport func() driving.ViewportController,
	reader driving.DocumentReader,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	v := &View{
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		newSession:  newSession,
		newViewport: newViewport,
		reader:      reader,
		input:       input.NewQueryInput(s, "Ask a question about this document..."),
		spinner:     sp,
	}
	return v
}

// SetDocument binds the view to a document: fresh session, fresh
// viewer state, hydration and page count kicked off together.
func (v *View) SetDocument(doc domain.Document) tea.Cmd {
	v.document = &doc
	v.session = v.newSession(doc.ID)
	v.viewport = v.newViewport()
	v.input.Reset()
	v.err = nil

	return tea.Batch(
		v.hydrate(),
		v.loadPageCount(doc.ID),
		v.input.Init(),
		v.spinner.Tick,
	)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// hydrate returns a command that loads the conversation history.
func (v *View) hydrate() tea.Cmd {
	session := v.session
	return func() tea.Msg {
		err := session.Hydrate(context.Background())
		return messages.ChatHydrated{DocumentID: session.DocumentID(), Err: err}
	}
}

// loadPageCount returns a command that counts the document's pages.
func (v *View) loadPageCount(documentID string) tea.Cmd {
	return func() tea.Msg {
		if v.reader == nil {
			return messages.PageCountLoaded{DocumentID: documentID}
		}
		pages, err := v.reader.PageCount(context.Background(), documentID)
		return messages.PageCountLoaded{DocumentID: documentID, Pages: pages, Err: err}
	}
}

// send returns a command that sends the typed question.
func (v *View) send(query string) tea.Cmd {
	session := v.session
	return func() tea.Msg {
		_, err := session.Send(context.Background(), query)
		return messages.ChatAnswered{DocumentID: session.DocumentID(), Err: err}
	}
}

// Update handles messages for the chat view.
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

	case messages.ChatHydrated:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.ChatAnswered:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.PageCountLoaded:
		if msg.Err == nil && v.viewport != nil {
			v.viewport.SetTotalPages(msg.Pages)
		}
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
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
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}

	case keymap.Matches(keyStr, v.keys.Send):
		if v.session == nil {
			return v, nil
		}
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		if v.session.Sending() {
			return v, nil
		}
		v.input.Reset()
		v.err = nil
		return v, tea.Batch(v.send(query), v.spinner.Tick)

	case keymap.Matches(keyStr, v.keys.NextPage):
		if v.viewport != nil {
			v.viewport.ChangePage(1)
		}
		return v, nil

	case keymap.Matches(keyStr, v.keys.PrevPage):
		if v.viewport != nil {
			v.viewport.ChangePage(-1)
		}
		return v, nil

	case keymap.Matches(keyStr, v.keys.ZoomIn):
		if v.viewport != nil {
			v.viewport.ZoomIn()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keys.ZoomOut):
		if v.viewport != nil {
			v.viewport.ZoomOut()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the conversation.
func (v *View) View() string {
	var b strings.Builder

	name := "Document"
	if v.document != nil {
		name = v.document.Name
	}
	b.WriteString(v.styles.Title.Render("Chat - " + name))
	b.WriteString("\n")
	b.WriteString(v.renderStatusBar())
	b.WriteString("\n\n")

	if v.session != nil && v.session.Loading() {
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Muted.Render(" Loading conversation..."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(v.renderHistory())
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.ChatHelp())))

	return b.String()
}

// renderStatusBar shows the viewer pane state.
func (v *View) renderStatusBar() string {
	if v.viewport == nil {
		return ""
	}
	return v.styles.StatusBar.Render(fmt.Sprintf(
		"Page %d/%d  ·  Zoom %.0f%%",
		v.viewport.Page(), v.viewport.TotalPages(), v.viewport.Scale()*100,
	))
}

// renderHistory renders the conversation so far.
func (v *View) renderHistory() string {
	if v.session == nil {
		return ""
	}

	history := v.session.History()
	if len(history) == 0 {
		return v.styles.Muted.Render("No conversation yet. Ask away.") + "\n\n"
	}

	var b strings.Builder
	for _, msg := range history {
		b.WriteString(v.styles.Question.Render("You: "))
		b.WriteString(v.styles.Normal.Render(msg.Query()))
		b.WriteString("\n")

		if answer, ok := msg.Answer(); ok {
			b.WriteString(v.styles.Answer.Render("Doc: " + answer))
		} else {
			b.WriteString(v.spinner.View())
			b.WriteString(v.styles.Muted.Render(" thinking..."))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.ready = true
}

// Document returns the bound document.
func (v *View) Document() *domain.Document {
	return v.document
}

// Session returns the active chat session.
func (v *View) Session() driving.ChatSession {
	return v.session
}

// Viewport returns the viewer pane state.
func (v *View) Viewport() driving.ViewportController {
	return v.viewport
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
