// Package pdf renders bill and receipt documents. HTML templates carry the
// document content; a Renderer turns the HTML into PDF bytes.
package pdf

import "context"

// Renderer converts an HTML document to PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	Close() error
}

type disabledError struct{}

func (disabledError) Error() string { return "pdf rendering is disabled" }

// ErrDisabled reports that no renderer is configured.
var ErrDisabled error = disabledError{}

// DisabledRenderer rejects every render request.
type DisabledRenderer struct{}

func (DisabledRenderer) Render(context.Context, string) ([]byte, error) { return nil, ErrDisabled }
func (DisabledRenderer) Close() error                                   { return nil }
