// ABOUTME: Legacy-markup fallback for hand-written HTML without paragraph tags
// ABOUTME: Regroups font/table-cell text into pseudo-paragraphs by sentence boundaries

package scrape

import (
	"strings"

	"golang.org/x/net/html"
)

// runLegacyMarkup is the last resort for very old pages that lay out prose
// inside <font> tags and table cells with <br><br> separators instead of
// paragraph elements.
func runLegacyMarkup(sc *strategyContext) []string {
	if sc.doc == nil {
		return nil
	}

	var texts []string
	for _, node := range sc.doc.Selection.Nodes {
		collectLegacyText(node, &texts)
	}

	blob := collapseWhitespace(strings.Join(texts, " "))
	if len(blob) < sc.opts.MinParagraphLength {
		return nil
	}

	var paragraphs []string
	for _, pseudo := range groupSentences(blob, sc.opts.PseudoParagraphLength) {
		if len(pseudo) < sc.opts.MinParagraphLength {
			continue
		}
		if isCopyrightFragment(pseudo) {
			continue
		}
		paragraphs = append(paragraphs, pseudo)
	}

	return paragraphs
}

// legacyContainers are the presentational elements old pages put prose in
var legacyContainers = map[string]bool{
	"font":   true,
	"td":     true,
	"center": true,
}

// collectLegacyText walks the node tree and gathers the text content of
// legacy presentational containers. Script and style subtrees are skipped.
func collectLegacyText(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "head":
			return
		}

		if legacyContainers[n.Data] {
			text := nodeText(n)
			if strings.TrimSpace(text) != "" {
				*out = append(*out, text)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLegacyText(c, out)
	}
}

// nodeText concatenates all text nodes under n
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style") {
			continue
		}
		sb.WriteString(nodeText(c))
		sb.WriteString(" ")
	}
	return sb.String()
}

// groupSentences splits a text blob at sentence boundaries and regroups
// the sentences into pseudo-paragraphs of roughly targetLength characters
func groupSentences(blob string, targetLength int) []string {
	if targetLength <= 0 {
		targetLength = 500
	}

	sentences := splitSentences(blob)

	var paragraphs []string
	var current strings.Builder

	for _, sentence := range sentences {
		if current.Len() > 0 && current.Len()+len(sentence) > targetLength {
			paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
	}

	return paragraphs
}

// splitSentences breaks text at terminal punctuation followed by a space.
// Deliberately simple: abbreviation handling is not worth it for the
// legacy fallback.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text)-1; i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && text[i+1] == ' ' {
			sentence := strings.TrimSpace(text[start : i+1])
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 1
		}
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

// isCopyrightFragment drops pseudo-paragraphs that are only a copyright
// notice
func isCopyrightFragment(p string) bool {
	lower := strings.ToLower(p)
	if !strings.Contains(lower, "©") && !strings.Contains(lower, "copyright") && !strings.Contains(lower, "all rights reserved") {
		return false
	}
	return len(p) < 200
}
