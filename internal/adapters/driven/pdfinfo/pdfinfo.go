// Package pdfinfo inspects local PDF files.
package pdfinfo

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driven"
)

// Ensure Inspector implements the PageCounter interface.
var _ driven.PageCounter = (*Inspector)(nil)

// Inspector reads PDF metadata from the local filesystem.
type Inspector struct{}

// NewInspector creates a PDF inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// PageCount returns the number of pages in the PDF at path.
func (i *Inspector) PageCount(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", path, err)
	}
	return count, nil
}
