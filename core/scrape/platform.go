// ABOUTME: Platform detection for known publishing platforms
// ABOUTME: Ordered predicate list, most specific first, with Custom as the unconditional last resort

package scrape

import (
	"strings"

	"anoncast-api/core/domain"
	"github.com/PuerkitoBio/goquery"
)

// platformPredicate pairs a platform label with its match condition
type platformPredicate struct {
	label string
	match func(url string, doc *goquery.Document) bool
}

// platformPredicates is evaluated top to bottom; the first match wins.
// URL-substring checks for hosted SaaS domains come first, then DOM and
// meta-tag fingerprints for self-hosted installs.
var platformPredicates = []platformPredicate{
	{
		label: domain.PlatformMedium,
		match: func(url string, _ *goquery.Document) bool {
			return strings.Contains(url, "medium.com")
		},
	},
	{
		label: domain.PlatformSubstack,
		match: func(url string, _ *goquery.Document) bool {
			return strings.Contains(url, "substack.com")
		},
	},
	{
		label: domain.PlatformWordPress,
		match: func(url string, _ *goquery.Document) bool {
			return strings.Contains(url, "wordpress.com")
		},
	},
	{
		label: domain.PlatformGhost,
		match: func(url string, _ *goquery.Document) bool {
			return strings.Contains(url, "ghost.io")
		},
	},
	{
		label: domain.PlatformWordPress,
		match: func(_ string, doc *goquery.Document) bool {
			if doc == nil {
				return false
			}
			if generatorContains(doc, "wordpress") {
				return true
			}
			// REST discovery link relation on self-hosted installs
			if doc.Find(`link[rel="https://api.w.org/"]`).Length() > 0 {
				return true
			}
			// wp-content asset paths survive even heavily themed sites
			return doc.Find(`link[href*="wp-content"], script[src*="wp-content"], img[src*="wp-content"]`).Length() > 0
		},
	},
	{
		label: domain.PlatformGhost,
		match: func(_ string, doc *goquery.Document) bool {
			if doc == nil {
				return false
			}
			if generatorContains(doc, "ghost") {
				return true
			}
			return doc.Find(`link[href*="/ghost/assets/"], script[src*="/ghost/assets/"]`).Length() > 0
		},
	},
	{
		label: domain.PlatformSubstack,
		match: func(_ string, doc *goquery.Document) bool {
			if doc == nil {
				return false
			}
			return doc.Find(`link[href*="substackcdn.com"], script[src*="substackcdn.com"]`).Length() > 0
		},
	},
}

// DetectPlatform classifies the document among the known publishing
// platforms, or Custom when nothing matches.
func DetectPlatform(url string, doc *goquery.Document) string {
	for _, p := range platformPredicates {
		if p.match(url, doc) {
			return p.label
		}
	}
	return domain.PlatformCustom
}

// generatorContains reports whether a generator meta tag mentions name
func generatorContains(doc *goquery.Document, name string) bool {
	content, exists := doc.Find(`meta[name="generator"]`).Attr("content")
	if !exists {
		return false
	}
	return strings.Contains(strings.ToLower(content), name)
}
