// ABOUTME: Paragraph normalization, deduplication, and reading metrics
// ABOUTME: Runs after every extraction strategy so thresholds apply consistently

package scrape

import (
	"fmt"
	"strings"
)

// collapseWhitespace trims the string and collapses internal whitespace
// runs to single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeParagraphs cleans each paragraph, drops entries under minLength,
// and removes duplicates under case-insensitive trimmed comparison. The
// first occurrence wins and document order is preserved. The length filter
// runs after whitespace collapsing so borderline paragraphs are judged the
// same way no matter which strategy produced them.
func normalizeParagraphs(raw []string, minLength int) []string {
	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, p := range raw {
		p = collapseWhitespace(p)
		if len(p) < minLength {
			continue
		}

		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true

		cleaned = append(cleaned, p)
	}

	return cleaned
}

// joinContent renders the paragraph list as the full text, blank-line
// separated
func joinContent(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

// countWords counts non-empty whitespace-delimited tokens
func countWords(content string) int {
	return len(strings.Fields(content))
}

// estimateReadTime renders the reading time at the given speed, rounding up
func estimateReadTime(wordCount, wordsPerMinute int) string {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// isBoilerplate reports whether a paragraph starts with a denylisted
// navigation or marketing phrase. Only the first ~30 characters are
// examined; the denylist is a heuristic and false negatives are expected.
func isBoilerplate(p string, prefixes []string) bool {
	head := strings.ToLower(p)
	if len(head) > 30 {
		head = head[:30]
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(head, prefix) {
			return true
		}
	}

	// A copyright symbol anywhere in the head marks footer text
	return strings.Contains(head, "©")
}
