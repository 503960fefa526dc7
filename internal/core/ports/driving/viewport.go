package driving

// ViewportController is bounded page/zoom state for the paired PDF
// view. All operations are pure synchronous state transitions; out of
// range requests clamp rather than error.
type ViewportController interface {
	// SetTotalPages records the page count once the document is parsed.
	SetTotalPages(n int)

	// ChangePage moves by delta, clamped to [1, totalPages].
	ChangePage(delta int)

	// ZoomIn increases scale by one step, clamped to the maximum.
	ZoomIn()

	// ZoomOut decreases scale by one step, clamped to the minimum.
	ZoomOut()

	// Page returns the current page number.
	Page() int

	// TotalPages returns the known page count.
	TotalPages() int

	// Scale returns the current zoom scale.
	Scale() float64
}
