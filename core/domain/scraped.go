// ABOUTME: ScrapedContent domain model represents the extracted content of a web article
// ABOUTME: The paragraph list is the unit of narration for downstream speech synthesis

package domain

import (
	"errors"
	"strings"
)

// Platform labels for known publishing platforms
const (
	PlatformMedium    = "Medium"
	PlatformSubstack  = "Substack"
	PlatformWordPress = "WordPress"
	PlatformGhost     = "Ghost"
	PlatformCustom    = "Custom"
)

// ScrapedContent is the result of a successful article extraction
type ScrapedContent struct {
	// Title is the article headline, "Untitled" if none was found
	Title string `json:"title"`

	// Author is the byline, "Unknown Author" if none was found
	Author string `json:"author"`

	// PublishDate is an RFC 3339 date string when discoverable
	PublishDate string `json:"publishDate,omitempty"`

	// FeaturedImage is the article's hero image URL
	FeaturedImage string `json:"featuredImage,omitempty"`

	// Images lists all distinct image URLs in extraction order
	Images []string `json:"images,omitempty"`

	// Content is the full normalized text, paragraphs joined by blank lines
	Content string `json:"content"`

	// Paragraphs is the ordered narration-ready paragraph list
	Paragraphs []string `json:"paragraphs"`

	// WordCount is the number of whitespace-delimited tokens in Content
	WordCount int `json:"wordCount"`

	// EstimatedReadTime is a human-readable reading time ("<n> min read")
	EstimatedReadTime string `json:"estimatedReadTime"`

	// Platform is one of the Platform* labels
	Platform string `json:"platform"`

	// URL is the originally requested URL, echoed back for provenance
	URL string `json:"url"`
}

// Validate checks the invariants every extraction result must satisfy
func (s *ScrapedContent) Validate() error {
	if len(s.Paragraphs) == 0 {
		return errors.New("scraped content must have at least one paragraph")
	}

	seen := make(map[string]bool, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		if strings.TrimSpace(p) == "" {
			return errors.New("paragraphs cannot contain empty entries")
		}
		key := strings.ToLower(strings.TrimSpace(p))
		if seen[key] {
			return errors.New("paragraphs cannot contain duplicate entries")
		}
		seen[key] = true
	}

	if s.WordCount != len(strings.Fields(s.Content)) {
		return errors.New("word count does not match content")
	}

	return nil
}
