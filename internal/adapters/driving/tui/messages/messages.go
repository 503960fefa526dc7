// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDocuments lists the uploaded documents.
	ViewDocuments
	// ViewChat is the conversation view for one document.
	ViewChat
	// ViewUpload is the PDF upload view.
	ViewUpload
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDocuments:
		return "documents"
	case ViewChat:
		return "chat"
	case ViewUpload:
		return "upload"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// CatalogLoaded carries the document list from the catalog.
type CatalogLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentSelected signals a document was chosen for conversation.
type DocumentSelected struct {
	Document domain.Document
}

// ChatHydrated signals the conversation history finished loading.
type ChatHydrated struct {
	DocumentID string
	Err        error
}

// ChatAnswered signals a sent question resolved (or failed).
type ChatAnswered struct {
	DocumentID string
	Err        error
}

// PageCountLoaded carries the page count of the selected document.
type PageCountLoaded struct {
	DocumentID string
	Pages      int
	Err        error
}

// UploadProgressed carries a pipeline stage transition.
type UploadProgressed struct {
	Task domain.UploadTask
}

// UploadFinished signals the pipeline completed or failed.
type UploadFinished struct {
	Document *domain.Document
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
