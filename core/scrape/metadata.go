// ABOUTME: Article metadata extraction: title, author, publish date, and images
// ABOUTME: Platform rules first, then generic heuristics, then documented defaults

package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	readability "github.com/go-shiori/go-readability"
)

// Defaults for metadata nothing could be found for. Missing optional
// fields degrade to these rather than failing the extraction.
const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Unknown Author"
)

// metadata is the non-paragraph portion of an extraction result
type metadata struct {
	title         string
	author        string
	publishDate   string
	featuredImage string
	images        []string
}

// extractMetadata resolves title, author, date, and images using the
// platform rule table where one exists, generic heuristics otherwise.
// discoveredImage is the browser fallback's hero guess, preferred when
// present because it reflects rendered dimensions.
func extractMetadata(doc *goquery.Document, article *readability.Article, platform, discoveredImage string) metadata {
	rules := rulesByPlatform[platform]

	md := metadata{
		title:  extractTitle(doc, article, rules.title),
		author: extractAuthor(doc, article, rules.author),
	}

	if raw := firstMatch(doc, rules.date, `meta[property="article:published_time"]`, "article time", "time"); raw != "" {
		if parsed, err := dateparse.ParseAny(raw); err == nil {
			md.publishDate = parsed.Format(time.RFC3339)
		}
	}

	if doc != nil {
		md.images = collectImages(doc)
	}

	md.featuredImage = discoveredImage
	if md.featuredImage == "" {
		md.featuredImage = firstMatch(doc, rules.image, `meta[property="og:image"]`)
	}
	if md.featuredImage == "" && article != nil {
		md.featuredImage = article.Image
	}
	if md.featuredImage == "" && len(md.images) > 0 {
		md.featuredImage = md.images[0]
	}

	return md
}

// extractTitle resolves the title: platform rule, readability, h1, the
// title tag, then the documented default
func extractTitle(doc *goquery.Document, article *readability.Article, selectors []string) string {
	if title := firstMatch(doc, selectors); title != "" {
		return title
	}

	if article != nil && strings.TrimSpace(article.Title) != "" {
		return strings.TrimSpace(article.Title)
	}

	if doc != nil {
		if title := collapseWhitespace(doc.Find("h1").First().Text()); title != "" {
			return title
		}
		if title := collapseWhitespace(doc.Find("title").First().Text()); title != "" {
			return title
		}
	}

	return DefaultTitle
}

// extractAuthor resolves the byline: platform rule, readability, generic
// byline heuristics, then the documented default. The calling workflow may
// subsequently replace the default with the source domain.
func extractAuthor(doc *goquery.Document, article *readability.Article, selectors []string) string {
	if author := firstMatch(doc, selectors); author != "" {
		return author
	}

	if article != nil && strings.TrimSpace(article.Byline) != "" {
		return strings.TrimSpace(article.Byline)
	}

	if author := firstMatch(doc,
		nil,
		`a[rel="author"]`,
		`[itemprop="author"]`,
		`meta[name="author"]`,
		`[class*="author"]`,
	); author != "" {
		return author
	}

	return DefaultAuthor
}

// firstMatch tries each selector in order and returns the first non-empty
// value found. Meta tags yield their content attribute, images their src,
// time elements prefer datetime, everything else its text.
func firstMatch(doc *goquery.Document, selectors []string, fallbacks ...string) string {
	if doc == nil {
		return ""
	}

	for _, selector := range append(selectors, fallbacks...) {
		s := doc.Find(selector).First()
		if s.Length() == 0 {
			continue
		}

		if value := selectionValue(s); value != "" {
			return value
		}
	}

	return ""
}

// selectionValue pulls the useful value out of a matched element
func selectionValue(s *goquery.Selection) string {
	if goquery.NodeName(s) == "meta" {
		content, _ := s.Attr("content")
		return strings.TrimSpace(content)
	}

	if goquery.NodeName(s) == "img" {
		if src, ok := s.Attr("src"); ok && src != "" {
			return strings.TrimSpace(src)
		}
		src, _ := s.Attr("data-src")
		return strings.TrimSpace(src)
	}

	if datetime, ok := s.Attr("datetime"); ok && datetime != "" {
		return strings.TrimSpace(datetime)
	}

	return collapseWhitespace(s.Text())
}

// collectImages gathers all distinct image URLs in document order,
// skipping data URIs and obvious chrome imagery
func collectImages(doc *goquery.Document) []string {
	var images []string
	seen := make(map[string]bool)

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			src, _ = s.Attr("data-src")
		}
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		if looksLikeChromeImage(src) {
			return
		}
		if seen[src] {
			return
		}
		seen[src] = true
		images = append(images, src)
	})

	return images
}

// looksLikeChromeImage filters icon, avatar, and logo URLs
func looksLikeChromeImage(src string) bool {
	lower := strings.ToLower(src)
	return strings.Contains(lower, "icon") ||
		strings.Contains(lower, "avatar") ||
		strings.Contains(lower, "logo")
}
