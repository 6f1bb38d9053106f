// ABOUTME: The prioritized extraction strategy chain for article paragraphs
// ABOUTME: Each strategy is a pure function over the fetch context; the first sufficient result wins

package scrape

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// strategyContext carries everything a strategy may consult
type strategyContext struct {
	url          string
	platform     string
	doc          *goquery.Document
	renderedText string
	article      *readability.Article
	opts         Options
}

// strategy is one step of the extraction chain. run returns the candidate
// paragraphs, or nil when this strategy cannot produce a usable result.
type strategy struct {
	name string
	run  func(sc *strategyContext) []string
}

// strategies is the priority chain: platform-specific rules, the
// browser-rendered text, readability, the generic DOM heuristic, and the
// legacy-markup fallback. Adding a platform means appending a rule table;
// the chain itself never changes.
var strategies = []strategy{
	{name: "platform", run: runPlatformRules},
	{name: "rendered", run: runRenderedText},
	{name: "readability", run: runReadability},
	{name: "generic", run: runGenericDOM},
	{name: "legacy", run: runLegacyMarkup},
}

// paragraphSelector lists the leaf-level content elements collected from
// any container
const paragraphSelector = "p, h1, h2, h3, h4, blockquote, li"

var blankLineSplit = regexp.MustCompile(`\n{2,}`)

// runPlatformRules applies the detected platform's selector table
func runPlatformRules(sc *strategyContext) []string {
	rules, ok := rulesByPlatform[sc.platform]
	if !ok || sc.doc == nil {
		return nil
	}

	for _, containerSel := range rules.content {
		container := sc.doc.Find(containerSel)
		if container.Length() == 0 {
			continue
		}

		paragraphs := collectLeafText(container, sc.opts, rules.excludePhrases)
		if len(paragraphs) > 0 {
			return paragraphs
		}
	}

	return nil
}

// runRenderedText splits the browser's leaf-block reconstruction. The
// fetcher already segments at block boundaries with blank lines.
func runRenderedText(sc *strategyContext) []string {
	if len(sc.renderedText) < sc.opts.MinRenderedTextLength {
		return nil
	}

	var paragraphs []string
	for _, block := range blankLineSplit.Split(sc.renderedText, -1) {
		block = collapseWhitespace(block)
		if len(block) < sc.opts.MinParagraphLength {
			continue
		}
		if isBoilerplate(block, sc.opts.BoilerplatePrefixes) {
			continue
		}
		paragraphs = append(paragraphs, block)
	}

	return paragraphs
}

// runReadability splits the reader-mode text blob into paragraphs
func runReadability(sc *strategyContext) []string {
	if sc.article == nil || len(sc.article.TextContent) < sc.opts.MinReadabilityLength {
		return nil
	}

	text := sc.article.TextContent

	segments := blankLineSplit.Split(text, -1)
	if len(segments) < 3 {
		// Reader-mode output sometimes joins paragraphs with single
		// newlines; re-split where a newline is followed by a capital
		segments = splitBeforeCapital(text)
	}
	if len(segments) < 3 && len(text) > 1000 {
		segments = strings.Split(text, "\n")
	}

	var paragraphs []string
	for _, seg := range segments {
		seg = collapseWhitespace(seg)
		if len(seg) < sc.opts.MinParagraphLength {
			continue
		}
		if isBoilerplate(seg, sc.opts.BoilerplatePrefixes) {
			continue
		}
		paragraphs = append(paragraphs, seg)
	}

	return paragraphs
}

// splitBeforeCapital splits text at newlines immediately followed by an
// uppercase letter, a stand-in for paragraph boundaries in joined text
func splitBeforeCapital(text string) []string {
	var segments []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\n' && i+1 < len(runes) && unicode.IsUpper(runes[i+1]) {
			segments = append(segments, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(runes[i])
	}
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// runGenericDOM locates the most plausible main-content container and
// collects leaf text from it
func runGenericDOM(sc *strategyContext) []string {
	if sc.doc == nil {
		return nil
	}

	container := findMainContainer(sc.doc)
	if container == nil {
		return nil
	}

	return collectLeafText(container, sc.opts, nil)
}

// findMainContainer tries semantic containers first, then class-name
// heuristics, then the document body as last resort
func findMainContainer(doc *goquery.Document) *goquery.Selection {
	candidates := []string{
		"article",
		`[role="main"]`,
		"main",
		`div[class*="content"]`,
		`div[class*="post"]`,
		`div[class*="article"]`,
		"body",
	}

	for _, sel := range candidates {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}

	return nil
}

// chromeSelector marks page chrome whose text must never become narration
const chromeSelector = "nav, header, footer, aside, .sidebar, .comments"

// collectLeafText gathers paragraph-level text from container, skipping
// chrome regions and container elements whose children are collected
// individually (avoiding parent-and-child double counting).
func collectLeafText(container *goquery.Selection, opts Options, extraPhrases []string) []string {
	var paragraphs []string
	seen := make(map[string]bool)

	container.Find(paragraphSelector).Each(func(_ int, s *goquery.Selection) {
		// A list item wrapping its own paragraphs would duplicate them
		if s.Find(paragraphSelector).Length() > 0 {
			return
		}

		if s.ParentsFiltered(chromeSelector).Length() > 0 {
			return
		}

		text := collapseWhitespace(s.Text())
		if len(text) < opts.MinParagraphLength {
			return
		}
		if isBoilerplate(text, opts.BoilerplatePrefixes) {
			return
		}
		if matchesPhrase(text, extraPhrases) {
			return
		}

		key := strings.ToLower(text)
		if seen[key] {
			return
		}
		seen[key] = true

		paragraphs = append(paragraphs, text)
	})

	return paragraphs
}

// matchesPhrase drops short fragments containing a platform-specific
// chrome phrase ("5 min read", "Share this post"). Long paragraphs that
// merely mention a phrase are kept.
func matchesPhrase(text string, phrases []string) bool {
	if len(phrases) == 0 || len(text) > 60 {
		return false
	}

	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return false
}
