package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatSession = (*ChatService)(nil)

// ChatService manages one conversation bound to a fixed document id.
// The optimistic echo and the confirmed merge are each a single atomic
// history update; two unrelated sends are never in flight at once.
type ChatService struct {
	gateway    driven.BackendGateway
	documentID string

	mu       sync.Mutex
	history  domain.ChatHistory
	loading  bool
	hydrated bool
	sending  bool
}

// NewChatService creates a session for the given document.
func NewChatService(gateway driven.BackendGateway, documentID string) *ChatService {
	return &ChatService{gateway: gateway, documentID: documentID}
}

// DocumentID returns the document this session is bound to.
func (s *ChatService) DocumentID() string { return s.documentID }

// Hydrate fetches prior history and replaces local state. Loading
// reports true from the moment Hydrate is entered until it returns, so
// observers show a placeholder instead of a flash of empty history.
func (s *ChatService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	msgs, err := s.gateway.ChatHistory(ctx, s.documentID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return fmt.Errorf("loading chat history: %w", err)
	}
	s.history = domain.NewChatHistory(msgs)
	s.hydrated = true
	logger.Debug("chat session hydrated: %d messages (doc=%s)", len(msgs), s.documentID)
	return nil
}

// Send submits a query. The optimistic echo is appended synchronously,
// before the network call is issued; on success the echo is replaced by
// the confirmed message in one history edit. On failure the echo stays
// in history without an answer and the error is returned to the caller;
// nothing is substituted into the history itself.
func (s *ChatService) Send(ctx context.Context, query string) (domain.ChatMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ChatMessage{}, domain.ErrEmptyQuery
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrSendInFlight
	}
	if err := s.history.AppendPending(query); err != nil {
		s.mu.Unlock()
		return domain.ChatMessage{}, err
	}
	s.sending = true
	s.mu.Unlock()

	confirmed, err := s.gateway.SendChat(ctx, s.documentID, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false
	if err != nil {
		// The pending echo is left in place, unanswered. Whether to
		// mark it failed or retryable is a product decision; for now
		// the failure is only reported to the caller.
		logger.Error("chat send failed (doc=%s): %v", s.documentID, err)
		return domain.ChatMessage{}, fmt.Errorf("sending query: %w", err)
	}

	s.history.ResolvePending(confirmed)
	return confirmed, nil
}

// History returns a snapshot of the conversation in order.
func (s *ChatService) History() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Messages()
}

// Loading reports whether hydration is pending.
func (s *ChatService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Sending reports whether a send is awaiting its answer.
func (s *ChatService) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}
