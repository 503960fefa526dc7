package services

import (
	"sync"

	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
)

// Zoom bounds and step for the viewer pane.
const (
	MinScale  = 0.5
	MaxScale  = 2.0
	ZoomStep  = 0.1
	firstPage = 1
)

// Ensure ViewportService implements the interface.
var _ driving.ViewportController = (*ViewportService)(nil)

// ViewportService is bounded page/zoom state for the paired PDF view.
// Pure state, no I/O; every out-of-range request clamps.
type ViewportService struct {
	mu    sync.Mutex
	page  int
	total int
	scale float64
}

// NewViewportService starts at page 1, scale 1.0, with an unknown page
// count. Until SetTotalPages is called, navigation stays on page 1.
func NewViewportService() *ViewportService {
	return &ViewportService{page: firstPage, scale: 1.0}
}

// SetTotalPages records the page count once the document is parsed. The
// current page is clamped into the new range.
func (s *ViewportService) SetTotalPages(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 {
		n = 0
	}
	s.total = n
	s.page = clampPage(s.page, n)
}

// ChangePage moves by delta, clamped to [1, totalPages].
func (s *ViewportService) ChangePage(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clampPage(s.page+delta, s.total)
}

// ZoomIn increases scale by one step, never exceeding MaxScale.
func (s *ViewportService) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = min(s.scale+ZoomStep, MaxScale)
}

// ZoomOut decreases scale by one step, never below MinScale.
func (s *ViewportService) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = max(s.scale-ZoomStep, MinScale)
}

// Page returns the current page number.
func (s *ViewportService) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// TotalPages returns the known page count.
func (s *ViewportService) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Scale returns the current zoom scale.
func (s *ViewportService) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// clampPage bounds page to [1, total]. With no known pages it pins to
// the first page.
func clampPage(page, total int) int {
	if total < firstPage {
		return firstPage
	}
	if page < firstPage {
		return firstPage
	}
	if page > total {
		return total
	}
	return page
}
