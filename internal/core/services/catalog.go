package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.DocumentCatalog = (*CatalogService)(nil)

// CatalogService maintains the visible set of documents for the
// current user. Only Load and Append mutate it.
type CatalogService struct {
	gateway driven.BackendGateway

	mu   sync.RWMutex
	docs []domain.Document
}

// NewCatalogService creates a new document catalog.
func NewCatalogService(gateway driven.BackendGateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

// Load fetches the full set from the backend and replaces local state.
// Called once per session start. On failure local state is unchanged.
func (s *CatalogService) Load(ctx context.Context) error {
	docs, err := s.gateway.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}

	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()

	logger.Debug("catalog loaded: %d documents", len(docs))
	return nil
}

// Append inserts a document at the end. Called exactly once per
// successful upload; the caller guarantees the id is new.
func (s *CatalogService) Append(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}

// Documents returns a snapshot in insertion order.
func (s *CatalogService) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}
