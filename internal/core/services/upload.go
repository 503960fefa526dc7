package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadOrchestrator = (*UploadService)(nil)

// UploadService drives the four-stage ingestion pipeline: acquire a
// write grant, transfer the bytes, persist the catalog record, trigger
// indexing. Stages run strictly in order; no stage is retried and no
// compensating rollback runs on failure.
type UploadService struct {
	gateway  driven.BackendGateway
	store    driven.ObjectStore
	catalog  driving.DocumentCatalog
	observer driving.UploadObserver

	mu   sync.Mutex
	task *domain.UploadTask
}

// NewUploadService creates a new upload orchestrator. observer may be
// nil.
func NewUploadService(
	gateway driven.BackendGateway,
	store driven.ObjectStore,
	catalog driving.DocumentCatalog,
	observer driving.UploadObserver,
) *UploadService {
	return &UploadService{
		gateway:  gateway,
		store:    store,
		catalog:  catalog,
		observer: observer,
	}
}

// Upload runs the pipeline for one file. The MIME gate runs before any
// state is mutated: a non-PDF is rejected with ErrUnsupportedFileType
// and the orchestrator stays idle.
func (s *UploadService) Upload(ctx context.Context, file domain.FileUpload) (*domain.Document, error) {
	if file.ContentType != domain.PDFContentType {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, file.ContentType)
	}

	if err := s.begin(file); err != nil {
		return nil, err
	}

	doc, err := s.run(ctx, file)
	if err != nil {
		s.finish(domain.StageFailed, err)
		return nil, err
	}

	s.finish(domain.StageCompleted, nil)
	s.catalog.Append(*doc)
	logger.Info("upload completed: %s (id=%s)", doc.Name, doc.ID)
	return doc, nil
}

// begin claims the single task slot.
func (s *UploadService) begin(file domain.FileUpload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task != nil && !s.task.Stage.Terminal() {
		return domain.ErrUploadInFlight
	}
	s.task = &domain.UploadTask{
		ID:    uuid.NewString(),
		File:  file,
		Stage: domain.StageIdle,
	}
	return nil
}

// run executes the stages in order. Each transition updates the
// progress label and notifies the observer before the network call is
// awaited, so the pipeline state is visible while the call is pending.
func (s *UploadService) run(ctx context.Context, file domain.FileUpload) (*domain.Document, error) {
	s.transition(domain.StagePreparing, fmt.Sprintf("Requesting upload destination for %s", file.Name))
	grant, err := s.gateway.CreateUploadGrant(ctx, file.Name)
	if err != nil {
		return nil, &domain.StageError{Stage: domain.StagePreparing, Err: err}
	}
	logger.Debug("upload grant: key=%s", grant.Key)

	s.transition(domain.StageTransferring, fmt.Sprintf("Transferring %d bytes to storage", file.SizeBytes))
	if err := s.transfer(ctx, grant.URL, file); err != nil {
		return nil, &domain.StageError{Stage: domain.StageTransferring, Err: err}
	}

	s.transition(domain.StagePersisting, "Saving document record")
	doc, err := s.gateway.CreateDocument(ctx, file.Name, file.SizeBytes, grant.Key)
	if err != nil {
		return nil, &domain.StageError{Stage: domain.StagePersisting, Err: err}
	}

	s.transition(domain.StageIndexing, "Indexing document")
	if err := s.gateway.TriggerIndexing(ctx, grant.Key, doc.ID); err != nil {
		return nil, &domain.StageError{Stage: domain.StageIndexing, Err: err}
	}

	return doc, nil
}

// transfer streams the file bytes to the granted destination.
func (s *UploadService) transfer(ctx context.Context, url string, file domain.FileUpload) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	return s.store.Put(ctx, url, file.ContentType, f, file.SizeBytes)
}

// transition advances the task and notifies the observer.
func (s *UploadService) transition(stage domain.UploadStage, label string) {
	s.mu.Lock()
	s.task.Stage = stage
	s.task.ProgressLabel = label
	snapshot := *s.task
	s.mu.Unlock()

	logger.Debug("upload stage: %s", stage)
	if s.observer != nil {
		s.observer(snapshot)
	}
}

// finish records the terminal state.
func (s *UploadService) finish(stage domain.UploadStage, err error) {
	s.mu.Lock()
	s.task.Stage = stage
	s.task.Err = err
	snapshot := *s.task
	s.mu.Unlock()

	if s.observer != nil {
		s.observer(snapshot)
	}
}

// Task returns a copy of the active or last-finished task.
func (s *UploadService) Task() *domain.UploadTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task == nil {
		return nil
	}
	snapshot := *s.task
	return &snapshot
}
