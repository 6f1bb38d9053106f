// ABOUTME: Tunable extraction heuristics for the scrape pipeline
// ABOUTME: Thresholds and phrase lists are empirical and overridable, not invariants

package scrape

import "time"

// Options holds the tunable knobs of the extraction pipeline. Every value
// here is an empirical heuristic; real-world sites will keep violating any
// fixed choice, so none of them is hard-coded into the pipeline logic.
type Options struct {
	// MinParagraphLength filters stray short fragments such as UI labels
	MinParagraphLength int

	// MinRenderedTextLength is how much browser-extracted text must exist
	// before the rendered-text strategy is trusted
	MinRenderedTextLength int

	// MinReadabilityLength is how much readability text must exist before
	// the readability strategy is trusted
	MinReadabilityLength int

	// InsufficientHTMLBytes marks a static fetch as inadequate when the
	// document is smaller than this
	InsufficientHTMLBytes int

	// AppShellHTMLBytes is the size under which a bare app-mount root
	// (id="app"/id="root") is treated as a client-rendered shell
	AppShellHTMLBytes int

	// BoilerplatePrefixes is the denylist of navigation/marketing phrase
	// prefixes; a paragraph whose first ~30 characters start with one of
	// these is discarded. The list is extensible and known-incomplete.
	BoilerplatePrefixes []string

	// ShellFingerprints are substrings that mark a client-rendered shell
	ShellFingerprints []string

	// WordsPerMinute is the reading speed behind estimated read time
	WordsPerMinute int

	// RenderConnectTimeout bounds browser session creation
	RenderConnectTimeout time.Duration

	// RenderNavigateTimeout bounds page navigation
	RenderNavigateTimeout time.Duration

	// RenderMaxRetries is how many times a rate-limited session creation
	// is retried
	RenderMaxRetries int

	// RenderRetryDelay is the fixed backoff between retries
	RenderRetryDelay time.Duration

	// PseudoParagraphLength is the target size when regrouping legacy
	// markup text into pseudo-paragraphs
	PseudoParagraphLength int

	// CacheTTL is how long successful extractions are cached
	CacheTTL time.Duration
}

// DefaultOptions returns the tuned defaults
func DefaultOptions() Options {
	return Options{
		MinParagraphLength:    20,
		MinRenderedTextLength: 200,
		MinReadabilityLength:  500,
		InsufficientHTMLBytes: 2000,
		AppShellHTMLBytes:     5000,
		BoilerplatePrefixes: []string{
			"menu",
			"navigation",
			"footer",
			"header",
			"sidebar",
			"cookie",
			"subscribe",
			"sign up",
			"sign in",
			"log in",
			"share",
			"search",
			"follow",
			"©",
			"copyright",
		},
		ShellFingerprints: []string{
			"enable JavaScript",
			"JavaScript must be enabled",
		},
		WordsPerMinute:        200,
		RenderConnectTimeout:  15 * time.Second,
		RenderNavigateTimeout: 30 * time.Second,
		RenderMaxRetries:      2,
		RenderRetryDelay:      5 * time.Second,
		PseudoParagraphLength: 500,
		CacheTTL:              time.Hour,
	}
}
