// ABOUTME: Chromedp-backed rendering backend for JavaScript-rendered pages
// ABOUTME: Connects to a remote browser pool over CDP or launches a local headless Chrome

package chromedp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"anoncast-api/core/interfaces"
)

// Backend creates chromedp browser sessions. With a websocket URL it
// attaches to a managed browser pool; without one it launches headless
// Chrome locally.
type Backend struct {
	wsURL  string
	logger interfaces.Logger
}

// NewBackend creates a rendering backend
func NewBackend(wsURL string, logger interfaces.Logger) *Backend {
	return &Backend{
		wsURL:  wsURL,
		logger: logger,
	}
}

// NewSession opens a browser tab. ctx bounds connection establishment
// only; the tab itself lives until Close, so its contexts hang off a
// fresh root rather than the caller's. The returned session must be
// closed on every exit path.
func (b *Backend) NewSession(ctx context.Context) (interfaces.BrowserSession, error) {
	var cancels []context.CancelFunc

	browserCtx := context.Background()
	if b.wsURL != "" {
		allocCtx, cancel := chromedp.NewRemoteAllocator(browserCtx, b.wsURL)
		cancels = append(cancels, cancel)
		browserCtx = allocCtx
	}

	tabCtx, cancel := chromedp.NewContext(browserCtx)
	cancels = append(cancels, cancel)

	// Establish the connection now so pool rejection surfaces here and
	// not on first navigation
	connectCtx, release := joinContext(tabCtx, ctx)
	err := chromedp.Run(connectCtx)
	release()
	if err != nil {
		for i := len(cancels) - 1; i >= 0; i-- {
			cancels[i]()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if strings.Contains(err.Error(), "429") {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrRenderRateLimited, err)
		}
		return nil, fmt.Errorf("browser connection failed: %w", err)
	}

	return &session{
		ctx:     tabCtx,
		cancels: cancels,
		logger:  b.logger,
	}, nil
}

// joinContext derives a context from parent that is additionally
// cancelled when bound is done. chromedp resolves the tab from context
// values, so the caller's deadline cannot be handed to Run directly; it
// has to be grafted onto the tab's chain. The returned release func must
// be called to stop the watch.
func joinContext(parent, bound context.Context) (context.Context, context.CancelFunc) {
	joined, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(bound, cancel)
	return joined, func() {
		stop()
		cancel()
	}
}

// session is one live browser tab
type session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	logger  interfaces.Logger
}

// run executes chromedp actions against the tab, bounded by the caller's
// ctx as well as the session's own lifetime
func (s *session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, release := joinContext(s.ctx, ctx)
	defer release()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads the URL and waits for the DOM to settle. Block-editor
// pages keep streaming content in after DOMContentLoaded, so they get a
// longer, selector-driven wait, either requested up front via opts.Wait
// or detected in-page.
func (s *session) Navigate(ctx context.Context, url string, opts interfaces.NavigateOptions) error {
	runCtx, release := joinContext(s.ctx, ctx)
	defer release()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, opts.Timeout)
		defer cancel()
	}

	if err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	); err != nil {
		return err
	}

	blockEditor := opts.Wait == interfaces.WaitBlockEditor
	if !blockEditor {
		if err := chromedp.Run(runCtx, chromedp.Evaluate(detectBlockEditorJS, &blockEditor)); err != nil {
			blockEditor = false
		}
	}

	if blockEditor {
		s.logger.Debug("Block editor page, extending settle wait", map[string]interface{}{
			"url": url,
		})
		if err := chromedp.Run(runCtx,
			chromedp.WaitVisible(`[data-block-id], .notion-page-content`, chromedp.ByQuery),
			chromedp.Sleep(5*time.Second),
		); err != nil {
			// The selector wait can time out on partially gated pages;
			// fall through with whatever rendered
			if runCtx.Err() != nil {
				return runCtx.Err()
			}
			return chromedp.Run(runCtx, chromedp.Sleep(8*time.Second))
		}
		return nil
	}

	return chromedp.Run(runCtx, chromedp.Sleep(3*time.Second))
}

// HTML returns the fully rendered document markup
func (s *session) HTML(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", err
	}
	return html, nil
}

// ExtractText runs the leaf-block text walk in the page
func (s *session) ExtractText(ctx context.Context) (string, error) {
	var text string
	if err := s.run(ctx, chromedp.Evaluate(extractTextJS, &text)); err != nil {
		return "", err
	}
	return text, nil
}

// ExtractImage runs the hero image heuristic in the page
func (s *session) ExtractImage(ctx context.Context) (string, error) {
	var src string
	if err := s.run(ctx, chromedp.Evaluate(extractImageJS, &src)); err != nil {
		return "", err
	}
	return src, nil
}

// Close releases the tab and its allocator
func (s *session) Close() error {
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
	return nil
}

// detectBlockEditorJS checks for block-editor page markers
const detectBlockEditorJS = `
	document.documentElement.classList.contains('notion-html') ||
	document.querySelector('[data-notion-html]') !== null ||
	document.querySelector('[data-block-id]') !== null ||
	window.location.hostname.includes('notion')
`

// extractTextJS collects leaf-level text blocks in document order. Only
// leaf blocks are taken so parent containers cannot duplicate child text.
const extractTextJS = `
(() => {
	const textBlocks = [];
	const seenTexts = new Set();

	const blocks = document.querySelectorAll('[data-block-id]');
	if (blocks.length > 0) {
		blocks.forEach(block => {
			if (block.querySelector('[data-block-id]')) return;
			const text = block.textContent?.trim();
			if (text && text.length > 10 && !seenTexts.has(text)) {
				seenTexts.add(text);
				textBlocks.push(text);
			}
		});
	}

	if (textBlocks.length < 3) {
		const elements = document.querySelectorAll('p, h1, h2, h3, h4, blockquote, li');
		elements.forEach(el => {
			if (el.closest('nav, header, footer, .sidebar, .comments')) return;
			const text = el.textContent?.trim();
			if (text && text.length > 10 && !seenTexts.has(text)) {
				seenTexts.add(text);
				textBlocks.push(text);
			}
		});
	}

	if (textBlocks.length > 0) {
		return textBlocks.join('\n\n');
	}

	return document.body?.innerText || '';
})()
`

// extractImageJS picks a hero image: og:image, then the first large
// rendered image, then any image that is not obvious chrome
const extractImageJS = `
(() => {
	const ogImage = document.querySelector('meta[property="og:image"]')?.getAttribute('content');
	if (ogImage) return ogImage;

	const images = Array.from(document.querySelectorAll('img'));
	for (const img of images) {
		const src = img.src || img.getAttribute('data-src');
		if (src && img.naturalWidth > 200 && img.naturalHeight > 200) {
			return src;
		}
	}

	for (const img of images) {
		const src = img.src || img.getAttribute('data-src');
		if (src && !src.includes('icon') && !src.includes('avatar') && !src.includes('logo')) {
			return src;
		}
	}

	return '';
})()
`
