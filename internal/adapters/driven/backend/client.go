package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Default client-side request pacing. The backend proxies an LLM, so
// bursts are cheap to allow but sustained hammering is not.
const (
	defaultRequestsPerSecond = 5.0
	defaultBurstSize         = 10
	defaultTimeout           = 60 * time.Second
)

// Ensure Client implements the interface.
var _ driven.BackendGateway = (*Client)(nil)

// Client is the HTTP implementation of driven.BackendGateway.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  driven.TokenProvider
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenProvider sets the bearer token source.
func WithTokenProvider(p driven.TokenProvider) Option {
	return func(c *Client) { c.tokens = p }
}

// WithRateLimit overrides the default request pacing.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// NewClient creates a gateway for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurstSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire types. Field names follow the backend contract, not Go style.

type apiError struct {
	Message string `json:"message"`
}

type signedURLRequest struct {
	File string `json:"file"`
}

type signedURLResponse struct {
	PreSignedURL struct {
		URL string `json:"URL"`
		Key string `json:"key"`
	} `json:"preSignedUrl"`
}

type createDocumentRequest struct {
	DocumentName string `json:"document_name"`
	Size         int64  `json:"size"`
	S3Key        string `json:"s3_key"`
}

type documentPayload struct {
	ID           string `json:"_id"`
	DocumentName string `json:"document_name"`
	S3Key        string `json:"s3_key"`
	Size         int64  `json:"size"`
	CreatedAt    string `json:"createdAt"`
}

type createDocumentResponse struct {
	Document documentPayload `json:"document"`
}

type upsertRequest struct {
	Key        string `json:"key"`
	DocumentID string `json:"documentId"`
}

type listDocumentsResponse struct {
	Documents []documentPayload `json:"documents"`
}

type readURLResponse struct {
	URL string `json:"url"`
}

type chatPayload struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

type chatHistoryResponse struct {
	Chats []chatPayload `json:"chats"`
}

type chatRequest struct {
	Query      string `json:"query"`
	DocumentID string `json:"documentId"`
}

type chatResponse struct {
	Chat chatPayload `json:"chat"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// CreateUploadGrant requests a write destination for fileName.
func (c *Client) CreateUploadGrant(ctx context.Context, fileName string) (*domain.UploadGrant, error) {
	var resp signedURLResponse
	err := c.do(ctx, http.MethodPost, "/api/upload-signed-url", signedURLRequest{File: fileName}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.UploadGrant{
		URL: resp.PreSignedURL.URL,
		Key: resp.PreSignedURL.Key,
	}, nil
}

// CreateDocument persists the catalog record for an uploaded object.
func (c *Client) CreateDocument(ctx context.Context, name string, sizeBytes int64, storageKey string) (*domain.Document, error) {
	req := createDocumentRequest{DocumentName: name, Size: sizeBytes, S3Key: storageKey}
	var resp createDocumentResponse
	if err := c.do(ctx, http.MethodPost, "/api/create-document", req, &resp); err != nil {
		return nil, err
	}
	doc := toDocument(resp.Document)
	return &doc, nil
}

// TriggerIndexing asks the backend to index the stored object.
func (c *Client) TriggerIndexing(ctx context.Context, storageKey, documentID string) error {
	return c.do(ctx, http.MethodPost, "/api/upsert", upsertRequest{Key: storageKey, DocumentID: documentID}, nil)
}

// ListDocuments returns the full document set for the current user.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var resp listDocumentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/all-documents", nil, &resp); err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, toDocument(d))
	}
	return docs, nil
}

// ReadURL returns a short-lived URL for fetching the PDF bytes.
func (c *Client) ReadURL(ctx context.Context, documentID string) (string, error) {
	var resp readURLResponse
	if err := c.do(ctx, http.MethodGet, "/api/get-signed-url/"+documentID, nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// ChatHistory returns the prior conversation for a document.
func (c *Client) ChatHistory(ctx context.Context, documentID string) ([]domain.ChatMessage, error) {
	var resp chatHistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/chat-history/"+documentID, nil, &resp); err != nil {
		return nil, err
	}
	msgs := make([]domain.ChatMessage, 0, len(resp.Chats))
	for _, chat := range resp.Chats {
		msgs = append(msgs, domain.AnsweredMessage(chat.Query, chat.Answer))
	}
	return msgs, nil
}

// SendChat submits a query and returns the confirmed exchange.
func (c *Client) SendChat(ctx context.Context, documentID, query string) (domain.ChatMessage, error) {
	var resp chatResponse
	err := c.do(ctx, http.MethodPost, "/api/chat", chatRequest{Query: query, DocumentID: documentID}, &resp)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.AnsweredMessage(resp.Chat.Query, resp.Chat.Answer), nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		Token: resp.Token,
		User: domain.User{
			ID:    resp.User.ID,
			Name:  resp.User.Name,
			Email: resp.User.Email,
		},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register", registerRequest{Name: name, Email: email, Password: password}, nil)
}

// do issues one JSON request and decodes the response into out (which
// may be nil for calls whose body is ignored). Non-2xx responses are
// normalised to the message the backend carried.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		switch {
		case errors.Is(err, domain.ErrAuthRequired):
			// No stored session yet. The request goes out anonymous;
			// login and register need exactly that, and protected
			// endpoints answer 401.
		case err != nil:
			return fmt.Errorf("getting token: %w", err)
		case token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.Debug("%s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.normaliseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// normaliseError extracts the backend's message from an error response.
// A 401 is tagged domain.ErrAuthInvalid so callers can prompt for a
// fresh login.
func (c *Client) normaliseError(resp *http.Response) error {
	var apiErr apiError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", domain.ErrAuthInvalid, apiErr.Message)
	}
	return fmt.Errorf("backend: %s (status %d)", apiErr.Message, resp.StatusCode)
}

// toDocument converts a wire document to the domain type. createdAt is
// an RFC 3339 string; an unparsable value leaves the zero time rather
// than failing the whole call.
func toDocument(p documentPayload) domain.Document {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return domain.Document{
		ID:         p.ID,
		Name:       p.DocumentName,
		StorageKey: p.S3Key,
		SizeBytes:  p.Size,
		CreatedAt:  createdAt,
	}
}
