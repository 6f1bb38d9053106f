// ABOUTME: Document fetcher with static-first strategy and headless-browser fallback
// ABOUTME: Browser sessions are scope-acquired and closed on every exit path

package scrape

import (
	"context"
	stderrors "errors"
	"io"
	"net/url"
	"strings"
	"time"

	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"
)

// FetchResult is what the fetcher hands to the extraction strategies
type FetchResult struct {
	// HTML is the document markup, rendered when the fallback ran
	HTML string

	// RenderedText is the browser's leaf-block text reconstruction,
	// empty when the static path sufficed
	RenderedText string

	// DiscoveredImage is the browser's hero image guess, empty when the
	// static path sufficed
	DiscoveredImage string

	// Rendered reports whether the headless fallback ran
	Rendered bool
}

// Fetcher retrieves article documents. The primary path is a plain GET
// with browser-like headers; when the result is inadequate for extraction
// the headless rendering backend takes over.
type Fetcher struct {
	deps    interfaces.Dependencies
	backend interfaces.RenderBackend
	opts    Options
}

// NewFetcher creates a fetcher. backend may be nil, in which case pages
// that need JavaScript rendering fail with a render-unavailable error.
func NewFetcher(deps interfaces.Dependencies, backend interfaces.RenderBackend, opts Options) *Fetcher {
	return &Fetcher{
		deps:    deps,
		backend: backend,
		opts:    opts,
	}
}

// Fetch retrieves the document at url
func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	html, staticErr := f.fetchStatic(ctx, url)

	if staticErr == nil && !f.needsRendering(html) {
		return &FetchResult{HTML: html}, nil
	}

	if staticErr != nil {
		f.deps.Logger.Debug("Static fetch failed, trying render backend", map[string]interface{}{
			"url":   url,
			"error": staticErr.Error(),
		})
	} else {
		f.deps.Logger.Debug("Static fetch looks like a client-rendered shell", map[string]interface{}{
			"url":        url,
			"html_bytes": len(html),
		})
	}

	result, renderErr := f.fetchRendered(ctx, url)
	if renderErr != nil {
		// When the backend cannot help, the static failure is the more
		// useful diagnostic if there was one
		if staticErr != nil && errors.IsRenderUnavailable(renderErr) {
			return nil, staticErr
		}
		return nil, renderErr
	}

	return result, nil
}

// fetchStatic performs the plain GET path
func (f *Fetcher) fetchStatic(ctx context.Context, url string) (string, error) {
	resp, err := f.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return "", &errors.FetchError{URL: url, Message: err.Error()}
	}

	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &errors.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &errors.FetchError{URL: url, Message: err.Error()}
	}

	return string(data), nil
}

// needsRendering applies the fetch-insufficiency heuristic: tiny documents,
// explicit "enable JavaScript" shells, and near-empty app-mount roots.
func (f *Fetcher) needsRendering(html string) bool {
	if len(html) < f.opts.InsufficientHTMLBytes {
		return true
	}

	for _, fingerprint := range f.opts.ShellFingerprints {
		if strings.Contains(html, fingerprint) {
			return true
		}
	}

	if len(html) < f.opts.AppShellHTMLBytes {
		if strings.Contains(html, `id="app"`) || strings.Contains(html, `id="root"`) {
			return true
		}
	}

	return false
}

// fetchRendered drives the headless fallback: acquire a session, navigate,
// read back markup, leaf text, and a hero image guess.
func (f *Fetcher) fetchRendered(ctx context.Context, url string) (result *FetchResult, err error) {
	if f.backend == nil {
		return nil, &errors.RenderUnavailableError{Message: "no rendering backend configured"}
	}

	session, err := f.newSessionWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			f.deps.Logger.Warn("Failed to close browser session", map[string]interface{}{
				"url":   url,
				"error": closeErr.Error(),
			})
		}
	}()

	navOpts := interfaces.NavigateOptions{
		Wait:    waitStrategyFor(url),
		Timeout: f.opts.RenderNavigateTimeout,
	}
	if err := session.Navigate(ctx, url, navOpts); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, &errors.RenderTimeoutError{URL: url, Stage: "navigate"}
		}
		return nil, &errors.FetchError{URL: url, Message: "render navigation failed: " + err.Error()}
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return nil, &errors.FetchError{URL: url, Message: "could not read rendered document: " + err.Error()}
	}

	text, err := session.ExtractText(ctx)
	if err != nil {
		f.deps.Logger.Debug("Rendered text extraction failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		text = ""
	}

	image, err := session.ExtractImage(ctx)
	if err != nil {
		image = ""
	}

	f.deps.Logger.Debug("Render fallback complete", map[string]interface{}{
		"url":        url,
		"html_bytes": len(html),
		"text_bytes": len(text),
	})

	return &FetchResult{
		HTML:            html,
		RenderedText:    text,
		DiscoveredImage: image,
		Rendered:        true,
	}, nil
}

// newSessionWithRetry acquires a browser session, retrying rate-limit
// rejections a bounded number of times with a fixed delay. Unavailability
// (missing credentials, outright rejection) is never retried.
func (f *Fetcher) newSessionWithRetry(ctx context.Context, url string) (interfaces.BrowserSession, error) {
	var lastErr error

	for attempt := 0; attempt <= f.opts.RenderMaxRetries; attempt++ {
		if attempt > 0 {
			f.deps.Logger.Info("Render backend rate limited, retrying", map[string]interface{}{
				"url":     url,
				"attempt": attempt,
			})
			select {
			case <-time.After(f.opts.RenderRetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		connectCtx, cancel := context.WithTimeout(ctx, f.opts.RenderConnectTimeout)
		session, err := f.backend.NewSession(connectCtx)
		cancel()

		if err == nil {
			return session, nil
		}

		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, &errors.RenderTimeoutError{URL: url, Stage: "connect"}
		}

		if !stderrors.Is(err, interfaces.ErrRenderRateLimited) {
			return nil, &errors.RenderUnavailableError{Message: err.Error()}
		}

		lastErr = err
	}

	return nil, &errors.FetchError{URL: url, Message: "render backend rate limited: " + lastErr.Error()}
}

// waitStrategyFor picks the post-navigation settle strategy from the URL.
// Block-editor hosts keep streaming content in well after DOMContentLoaded,
// so they get the extended wait up front; everything else relies on the
// session's in-page detection.
func waitStrategyFor(rawURL string) interfaces.WaitStrategy {
	u, err := url.Parse(rawURL)
	if err != nil {
		return interfaces.WaitDefault
	}

	host := strings.ToLower(u.Hostname())
	if host == "notion.so" || host == "notion.site" ||
		strings.HasSuffix(host, ".notion.so") || strings.HasSuffix(host, ".notion.site") {
		return interfaces.WaitBlockEditor
	}

	return interfaces.WaitDefault
}
