package domain

// UploadStage is one step of the sequential ingestion pipeline. Stage
// N+1 never begins before stage N's call resolves successfully.
type UploadStage int

const (
	// StageIdle means no upload is running.
	StageIdle UploadStage = iota
	// StagePreparing is requesting a write destination from the backend.
	StagePreparing
	// StageTransferring is putting the raw bytes to the granted URL.
	StageTransferring
	// StagePersisting is creating the catalog record.
	StagePersisting
	// StageIndexing is triggering backend indexing of the stored object.
	StageIndexing
	// StageCompleted is the successful terminal state.
	StageCompleted
	// StageFailed is the failed terminal state.
	StageFailed
)

// String returns the stage name.
func (s UploadStage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StagePreparing:
		return "preparing"
	case StageTransferring:
		return "transferring"
	case StagePersisting:
		return "persisting"
	case StageIndexing:
		return "indexing"
	case StageCompleted:
		return "completed"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the stage ends the pipeline.
func (s UploadStage) Terminal() bool {
	return s == StageCompleted || s == StageFailed
}

// UploadGrant is a short-lived, backend-issued write destination: the
// client may PUT one object directly to URL without going through the
// application server. Key is the storage key the object will live under.
type UploadGrant struct {
	URL string
	Key string
}

// UploadTask tracks one file moving through the pipeline. One task is
// active at a time; it is discarded on completion or when the upload
// surface is closed.
type UploadTask struct {
	// ID identifies the task locally. It has no backend meaning.
	ID string

	// File is the file being ingested.
	File FileUpload

	// Stage is the current pipeline stage.
	Stage UploadStage

	// ProgressLabel is a human-readable description of the current
	// stage, updated before each network call.
	ProgressLabel string

	// Err is set when Stage is StageFailed.
	Err error
}

// StageError tags a pipeline failure with the stage that produced it.
// Earlier stages' side effects are not rolled back: a transfer that
// succeeded before persisting failed leaves an orphaned object, and a
// record created before indexing failed leaves an unindexed document.
// Both are accepted inconsistencies surfaced only through this error.
type StageError struct {
	Stage UploadStage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return "upload " + e.Stage.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *StageError) Unwrap() error { return e.Err }
