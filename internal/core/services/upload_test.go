package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

func TestUploadService_VisitsStagesInOrder(t *testing.T) {
	ctx := context.Background()
	file := writeTestPDF(t, "report.pdf", 2097152)

	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(_ context.Context, fileName string) (*domain.UploadGrant, error) {
			assert.Equal(t, "report.pdf", fileName)
			return &domain.UploadGrant{URL: "https://storage.example.com/put/abc", Key: "uploads/abc.pdf"}, nil
		},
		createDocument: func(_ context.Context, name string, sizeBytes int64, storageKey string) (*domain.Document, error) {
			assert.Equal(t, "report.pdf", name)
			assert.Equal(t, int64(2097152), sizeBytes)
			assert.Equal(t, "uploads/abc.pdf", storageKey)
			return &domain.Document{ID: "doc-1", Name: name, StorageKey: storageKey, SizeBytes: sizeBytes}, nil
		},
		triggerIndexing: func(_ context.Context, storageKey, documentID string) error {
			assert.Equal(t, "uploads/abc.pdf", storageKey)
			assert.Equal(t, "doc-1", documentID)
			return nil
		},
	}
	store := &fakeObjectStore{}
	catalog := NewCatalogService(gateway)

	var stages []domain.UploadStage
	svc := NewUploadService(gateway, store, catalog, func(task domain.UploadTask) {
		stages = append(stages, task.Stage)
	})

	doc, err := svc.Upload(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)

	// Strict order, never skipping or reordering.
	assert.Equal(t, []domain.UploadStage{
		domain.StagePreparing,
		domain.StageTransferring,
		domain.StagePersisting,
		domain.StageIndexing,
		domain.StageCompleted,
	}, stages)

	// The bytes went to the granted destination with the declared type.
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "https://storage.example.com/put/abc", store.url)
	assert.Equal(t, domain.PDFContentType, store.contentType)
	assert.Len(t, store.bytes, 2097152)

	// Exactly one catalog append.
	docs := catalog.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "report.pdf", docs[0].Name)
}

func TestUploadService_RejectsNonPDF(t *testing.T) {
	gateway := &fakeGateway{t: t}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, &fakeObjectStore{}, catalog, nil)

	file := writeTestPDF(t, "notes.txt", 10)
	file.ContentType = "text/plain"

	_, err := svc.Upload(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	// Rejected before any state mutation: no task, no catalog entry.
	assert.Nil(t, svc.Task())
	assert.Empty(t, catalog.Documents())
}

func TestUploadService_PreparingFailure(t *testing.T) {
	cause := errors.New("network unreachable")
	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			return nil, cause
		},
	}
	store := &fakeObjectStore{}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, store, catalog, nil)

	_, err := svc.Upload(context.Background(), writeTestPDF(t, "report.pdf", 64))
	require.Error(t, err)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StagePreparing, stageErr.Stage)
	assert.ErrorIs(t, err, cause)

	// The upload was never attempted and the catalog is unchanged.
	assert.Equal(t, 0, store.calls)
	assert.Empty(t, catalog.Documents())

	task := svc.Task()
	require.NotNil(t, task)
	assert.Equal(t, domain.StageFailed, task.Stage)
}

func TestUploadService_TransferFailure(t *testing.T) {
	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			return &domain.UploadGrant{URL: "https://storage.example.com/put/x", Key: "uploads/x.pdf"}, nil
		},
	}
	store := &fakeObjectStore{putErr: errors.New("503 slow down")}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, store, catalog, nil)

	_, err := svc.Upload(context.Background(), writeTestPDF(t, "report.pdf", 64))

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageTransferring, stageErr.Stage)

	// A single attempt, no retry.
	assert.Equal(t, 1, store.calls)
	assert.Empty(t, catalog.Documents())
}

func TestUploadService_PersistFailureLeavesOrphanedObject(t *testing.T) {
	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			return &domain.UploadGrant{URL: "https://storage.example.com/put/x", Key: "uploads/x.pdf"}, nil
		},
		createDocument: func(context.Context, string, int64, string) (*domain.Document, error) {
			return nil, errors.New("500 internal")
		},
	}
	store := &fakeObjectStore{}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, store, catalog, nil)

	_, err := svc.Upload(context.Background(), writeTestPDF(t, "report.pdf", 64))

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StagePersisting, stageErr.Stage)

	// The object was written and is not cleaned up; only the error
	// surfaces the inconsistency.
	assert.Equal(t, 1, store.calls)
	assert.Empty(t, catalog.Documents())
}

func TestUploadService_IndexingFailureLeavesUnindexedDocument(t *testing.T) {
	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			return &domain.UploadGrant{URL: "https://storage.example.com/put/x", Key: "uploads/x.pdf"}, nil
		},
		createDocument: func(_ context.Context, name string, size int64, key string) (*domain.Document, error) {
			return &domain.Document{ID: "doc-1", Name: name, SizeBytes: size, StorageKey: key}, nil
		},
		triggerIndexing: func(context.Context, string, string) error {
			return errors.New("indexer unavailable")
		},
	}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, &fakeObjectStore{}, catalog, nil)

	_, err := svc.Upload(context.Background(), writeTestPDF(t, "report.pdf", 64))

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageIndexing, stageErr.Stage)

	// The document row exists server-side but is never appended locally.
	assert.Empty(t, catalog.Documents())
}

func TestUploadService_NotReentrant(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			close(started)
			<-release
			return nil, errors.New("aborted")
		},
	}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, &fakeObjectStore{}, catalog, nil)

	file := writeTestPDF(t, "report.pdf", 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Upload(context.Background(), file)
	}()

	<-started
	_, err := svc.Upload(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrUploadInFlight)

	close(release)
	<-done
}

func TestUploadService_ProgressLabelSetBeforeCall(t *testing.T) {
	var labels []string
	gateway := &fakeGateway{
		t: t,
		createUploadGrant: func(context.Context, string) (*domain.UploadGrant, error) {
			return nil, errors.New("stop here")
		},
	}
	catalog := NewCatalogService(gateway)
	svc := NewUploadService(gateway, &fakeObjectStore{}, catalog, func(task domain.UploadTask) {
		labels = append(labels, task.ProgressLabel)
	})

	_, _ = svc.Upload(context.Background(), writeTestPDF(t, "report.pdf", 64))

	require.NotEmpty(t, labels)
	assert.Contains(t, labels[0], "report.pdf")
}
