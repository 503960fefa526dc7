package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates a chat query was empty after trimming.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrUnsupportedFileType indicates the selected file is not a PDF.
	// The upload pipeline only accepts application/pdf.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrUploadInFlight indicates an upload is already running.
	// The orchestrator processes one file at a time.
	ErrUploadInFlight = errors.New("upload already in flight")

	// ErrSendInFlight indicates a chat send is awaiting its answer.
	// At most one optimistic message may be pending per session.
	ErrSendInFlight = errors.New("send already in flight")

	// Authentication errors.

	// ErrAuthRequired indicates no session is stored and the operation
	// needs an authenticated backend call.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the backend rejected the bearer token.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrInvalidEmail indicates the email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword indicates the password fails the backend policy:
	// at least 8 characters with an upper, a lower, a digit and a
	// special character.
	ErrWeakPassword = errors.New("password does not meet policy")
)
