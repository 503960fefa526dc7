package cli

import (
	"context"
	"time"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/core/services"
)

// fakeAuth is a scripted AuthService for command tests.
type fakeAuth struct {
	loginErr    error
	registerErr error
	logoutErr   error
	session     *domain.Session
	sessionErr  error

	loginEmail   string
	registerName string
	logouts      int
}

func (a *fakeAuth) Login(_ context.Context, email, _ string) (*domain.Session, error) {
	a.loginEmail = email
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return &domain.Session{
		Token: "tok",
		User:  domain.User{ID: "u1", Name: "Ada", Email: email},
	}, nil
}

func (a *fakeAuth) Register(_ context.Context, name, _, _ string) error {
	a.registerName = name
	return a.registerErr
}

func (a *fakeAuth) Logout(context.Context) error {
	a.logouts++
	return a.logoutErr
}

func (a *fakeAuth) Session(context.Context) (*domain.Session, error) {
	if a.sessionErr != nil {
		return nil, a.sessionErr
	}
	return a.session, nil
}

// fakeCatalog serves a fixed document list.
type fakeCatalog struct {
	docs    []domain.Document
	loadErr error
	loads   int
}

func (c *fakeCatalog) Load(context.Context) error {
	c.loads++
	return c.loadErr
}

func (c *fakeCatalog) Append(doc domain.Document) {
	c.docs = append(c.docs, doc)
}

func (c *fakeCatalog) Documents() []domain.Document {
	return c.docs
}

// fakeReader serves scripted read-side answers.
type fakeReader struct {
	url   string
	pages int
	err   error
}

func (r *fakeReader) ReadURL(context.Context, string) (string, error) {
	return r.url, r.err
}

func (r *fakeReader) PageCount(context.Context, string) (int, error) {
	return r.pages, r.err
}

// fakeChat is a scripted ChatSession. hydrate, when set, overrides the
// scripted hydrateErr and sees the caller's context.
type fakeChat struct {
	documentID string
	history    []domain.ChatMessage
	hydrate    func(ctx context.Context) error
	hydrateErr error
	sendErr    error

	sent []string
}

func (c *fakeChat) DocumentID() string { return c.documentID }

func (c *fakeChat) Hydrate(ctx context.Context) error {
	if c.hydrate != nil {
		return c.hydrate(ctx)
	}
	return c.hydrateErr
}
func (c *fakeChat) History() []domain.ChatMessage { return c.history }
func (c *fakeChat) Loading() bool                 { return false }
func (c *fakeChat) Sending() bool                 { return false }

func (c *fakeChat) Send(_ context.Context, query string) (domain.ChatMessage, error) {
	c.sent = append(c.sent, query)
	if c.sendErr != nil {
		return domain.ChatMessage{}, c.sendErr
	}
	return domain.AnsweredMessage(query, "grounded answer"), nil
}

// fakeUploader reports one transition per stage then succeeds.
type fakeUploader struct {
	observer driving.UploadObserver
	doc      *domain.Document
	err      error

	uploaded []domain.FileUpload
}

func (u *fakeUploader) Upload(_ context.Context, file domain.FileUpload) (*domain.Document, error) {
	u.uploaded = append(u.uploaded, file)
	if u.observer != nil {
		u.observer(domain.UploadTask{File: file, Stage: domain.StagePreparing, ProgressLabel: "Requesting upload destination"})
	}
	return u.doc, u.err
}

func (u *fakeUploader) Task() *domain.UploadTask { return nil }

// setupTestServices wires fake services and returns a cleanup func.
func setupTestServices() func() {
	auth := &fakeAuth{
		session: &domain.Session{
			Token: "tok",
			User:  domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
		},
	}
	catalog := &fakeCatalog{
		docs: []domain.Document{
			{ID: "doc-1", Name: "thesis.pdf", SizeBytes: 2048, CreatedAt: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)},
		},
	}
	reader := &fakeReader{url: "https://storage.example/doc-1?sig=abc", pages: 7}
	uploader := &fakeUploader{doc: &domain.Document{ID: "doc-9", Name: "new.pdf"}}

	SetServices(Services{
		Auth:    auth,
		Catalog: catalog,
		Reader:  reader,
		NewChat: func(documentID string) driving.ChatSession {
			return &fakeChat{documentID: documentID}
		},
		NewViewport: func() driving.ViewportController {
			return services.NewViewportService()
		},
		NewUploader: func(observer driving.UploadObserver) driving.UploadOrchestrator {
			uploader.observer = observer
			return uploader
		},
	})

	return func() {
		SetServices(Services{})
	}
}
