package services

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// fakeGateway is a scripted BackendGateway for service tests. Each
// field overrides one operation; unset operations fail the test if
// called.
type fakeGateway struct {
	t *testing.T

	createUploadGrant func(ctx context.Context, fileName string) (*domain.UploadGrant, error)
	createDocument    func(ctx context.Context, name string, sizeBytes int64, storageKey string) (*domain.Document, error)
	triggerIndexing   func(ctx context.Context, storageKey, documentID string) error
	listDocuments     func(ctx context.Context) ([]domain.Document, error)
	readURL           func(ctx context.Context, documentID string) (string, error)
	chatHistory       func(ctx context.Context, documentID string) ([]domain.ChatMessage, error)
	sendChat          func(ctx context.Context, documentID, query string) (domain.ChatMessage, error)
	login             func(ctx context.Context, email, password string) (*domain.Session, error)
	register          func(ctx context.Context, name, email, password string) error
}

func (g *fakeGateway) CreateUploadGrant(ctx context.Context, fileName string) (*domain.UploadGrant, error) {
	require.NotNil(g.t, g.createUploadGrant, "unexpected CreateUploadGrant call")
	return g.createUploadGrant(ctx, fileName)
}

func (g *fakeGateway) CreateDocument(ctx context.Context, name string, sizeBytes int64, storageKey string) (*domain.Document, error) {
	require.NotNil(g.t, g.createDocument, "unexpected CreateDocument call")
	return g.createDocument(ctx, name, sizeBytes, storageKey)
}

func (g *fakeGateway) TriggerIndexing(ctx context.Context, storageKey, documentID string) error {
	require.NotNil(g.t, g.triggerIndexing, "unexpected TriggerIndexing call")
	return g.triggerIndexing(ctx, storageKey, documentID)
}

func (g *fakeGateway) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	require.NotNil(g.t, g.listDocuments, "unexpected ListDocuments call")
	return g.listDocuments(ctx)
}

func (g *fakeGateway) ReadURL(ctx context.Context, documentID string) (string, error) {
	require.NotNil(g.t, g.readURL, "unexpected ReadURL call")
	return g.readURL(ctx, documentID)
}

func (g *fakeGateway) ChatHistory(ctx context.Context, documentID string) ([]domain.ChatMessage, error) {
	require.NotNil(g.t, g.chatHistory, "unexpected ChatHistory call")
	return g.chatHistory(ctx, documentID)
}

func (g *fakeGateway) SendChat(ctx context.Context, documentID, query string) (domain.ChatMessage, error) {
	require.NotNil(g.t, g.sendChat, "unexpected SendChat call")
	return g.sendChat(ctx, documentID, query)
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	require.NotNil(g.t, g.login, "unexpected Login call")
	return g.login(ctx, email, password)
}

func (g *fakeGateway) Register(ctx context.Context, name, email, password string) error {
	require.NotNil(g.t, g.register, "unexpected Register call")
	return g.register(ctx, name, email, password)
}

// fakeObjectStore records Put calls and serves scripted Fetch bodies.
type fakeObjectStore struct {
	putErr    error
	fetchErr  error
	fetchBody []byte

	url         string
	contentType string
	bytes       []byte
	calls       int
}

func (o *fakeObjectStore) Put(_ context.Context, url, contentType string, body io.Reader, _ int64) error {
	o.calls++
	o.url = url
	o.contentType = contentType
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	o.bytes = data
	return o.putErr
}

func (o *fakeObjectStore) Fetch(_ context.Context, url string) (io.ReadCloser, error) {
	if o.fetchErr != nil {
		return nil, o.fetchErr
	}
	o.url = url
	return io.NopCloser(bytes.NewReader(o.fetchBody)), nil
}

// writeTestPDF writes a file of the given size and returns its upload
// descriptor.
func writeTestPDF(t *testing.T, name string, size int) domain.FileUpload {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	data := make([]byte, size)
	copy(data, "%PDF-1.4")
	require.NoError(t, os.WriteFile(path, data, 0600))

	return domain.FileUpload{
		Name:        name,
		Path:        path,
		SizeBytes:   int64(size),
		ContentType: domain.PDFContentType,
	}
}
