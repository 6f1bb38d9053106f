// ABOUTME: Headless rendering backend contract for JavaScript-rendered pages
// ABOUTME: Sessions come from an externally rate-limited pool and must always be closed

package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrRenderRateLimited is returned by NewSession when the backend rejects
// session creation with a rate-limit response. Callers may retry a bounded
// number of times with a fixed delay.
var ErrRenderRateLimited = errors.New("render backend rate limited")

// WaitStrategy controls how long a session waits for the DOM to settle
// after navigation.
type WaitStrategy string

const (
	// WaitDefault waits briefly after DOMContentLoaded
	WaitDefault WaitStrategy = "default"

	// WaitBlockEditor waits longer for block-based editors (e.g. Notion)
	// which keep rendering content well after the document loads
	WaitBlockEditor WaitStrategy = "block-editor"
)

// NavigateOptions bounds a navigation call
type NavigateOptions struct {
	// Wait selects the settle strategy
	Wait WaitStrategy

	// Timeout bounds the navigation; exceeding it is a failure, not a hang
	Timeout time.Duration
}

// BrowserSession is one live page in the rendering backend.
// Close must be called exactly once per session, on every exit path.
type BrowserSession interface {
	// Navigate loads the URL and waits for the DOM to settle
	Navigate(ctx context.Context, url string, opts NavigateOptions) error

	// HTML returns the fully rendered document markup
	HTML(ctx context.Context) (string, error)

	// ExtractText walks leaf-level content elements in the rendered page
	// and returns blank-line separated text blocks, skipping chrome
	// regions and de-duplicating nested containers
	ExtractText(ctx context.Context) (string, error)

	// ExtractImage returns a best-guess hero image URL, or empty when the
	// page has none worth using
	ExtractImage(ctx context.Context) (string, error)

	// Close releases the session back to the pool
	Close() error
}

// RenderBackend creates browser sessions.
// NewSession fails with ErrRenderRateLimited when the pool is exhausted and
// with any other error when the backend is unusable (missing credentials).
// ctx bounds session establishment only: the returned session stays usable
// after ctx is cancelled and lives until Close.
type RenderBackend interface {
	NewSession(ctx context.Context) (BrowserSession, error)
}
