package tui

import "errors"

// ErrMissingCatalog is returned when the document catalog is not provided.
var ErrMissingCatalog = errors.New("tui: document catalog is required")

// ErrMissingChatFactory is returned when the chat session factory is not provided.
var ErrMissingChatFactory = errors.New("tui: chat session factory is required")

// ErrMissingViewportFactory is returned when the viewport factory is not provided.
var ErrMissingViewportFactory = errors.New("tui: viewport factory is required")

// ErrMissingUploaderFactory is returned when the uploader factory is not provided.
var ErrMissingUploaderFactory = errors.New("tui: uploader factory is required")
