package driven

import "context"

// PageCounter reports the number of pages in a PDF. The viewer pane
// needs the total before page navigation can be bounded.
type PageCounter interface {
	// PageCount parses the PDF at path and returns its page count.
	PageCount(ctx context.Context, path string) (int, error)
}
