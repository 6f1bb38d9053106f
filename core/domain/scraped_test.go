package domain

import (
	"strings"
	"testing"
)

func TestScrapedContent_Validate(t *testing.T) {
	valid := ScrapedContent{
		Title:      "A Title",
		Author:     "An Author",
		Content:    "First paragraph.\n\nSecond paragraph.",
		Paragraphs: []string{"First paragraph.", "Second paragraph."},
		WordCount:  4,
		Platform:   PlatformCustom,
		URL:        "https://example.com/post",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() returned error for valid content: %v", err)
	}
}

func TestScrapedContent_Validate_NoParagraphs(t *testing.T) {
	content := ScrapedContent{
		Title:      "A Title",
		Paragraphs: []string{},
	}

	if err := content.Validate(); err == nil {
		t.Error("Validate() should fail when paragraphs is empty")
	}
}

func TestScrapedContent_Validate_EmptyParagraph(t *testing.T) {
	content := ScrapedContent{
		Paragraphs: []string{"Real paragraph.", "   "},
		Content:    "Real paragraph.",
		WordCount:  2,
	}

	if err := content.Validate(); err == nil {
		t.Error("Validate() should fail for whitespace-only paragraph")
	}
}

func TestScrapedContent_Validate_DuplicateParagraphs(t *testing.T) {
	content := ScrapedContent{
		Paragraphs: []string{"Breaking news today.", "breaking news today."},
		Content:    "Breaking news today.\n\nbreaking news today.",
		WordCount:  6,
	}

	if err := content.Validate(); err == nil {
		t.Error("Validate() should fail for case-insensitive duplicate paragraphs")
	}
}

func TestScrapedContent_Validate_WordCountMismatch(t *testing.T) {
	content := ScrapedContent{
		Paragraphs: []string{"One two three."},
		Content:    "One two three.",
		WordCount:  99,
	}

	if err := content.Validate(); err == nil {
		t.Error("Validate() should fail when word count disagrees with content")
	}
}

func TestScrapedContent_WordCountMatchesFields(t *testing.T) {
	content := "alpha beta\n\ngamma  delta epsilon"
	if got := len(strings.Fields(content)); got != 5 {
		t.Fatalf("strings.Fields count = %d, want 5", got)
	}
}
