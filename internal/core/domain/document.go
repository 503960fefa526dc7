package domain

import "time"

// Document represents a PDF that has been uploaded, persisted and
// submitted for indexing. It is created once by the upload pipeline and
// immutable thereafter.
type Document struct {
	// ID is the server-assigned identifier.
	ID string

	// Name is the original file name, e.g. "report.pdf".
	Name string

	// StorageKey is the object key the backend granted for the upload.
	StorageKey string

	// SizeBytes is the file size in bytes.
	SizeBytes int64

	// CreatedAt is when the backend created the catalog record.
	CreatedAt time.Time
}

// FileUpload describes a locally selected file before ingestion.
type FileUpload struct {
	// Name is the file name sent to the backend.
	Name string

	// Path is the local filesystem path to read bytes from.
	Path string

	// SizeBytes is the declared size of the file.
	SizeBytes int64

	// ContentType is the declared MIME type. Only PDFContentType is
	// accepted by the pipeline.
	ContentType string
}

// PDFContentType is the only MIME type the ingestion pipeline accepts.
const PDFContentType = "application/pdf"
