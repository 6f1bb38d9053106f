// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"anoncast-api/core/domain"
)

// ScrapeService extracts narration-ready article content from web pages
type ScrapeService interface {
	// Scrape fetches the page at rawURL and extracts its content
	Scrape(ctx context.Context, rawURL string) (*domain.ScrapedContent, error)
}

// VoiceCatalogService exposes the curated narration voice catalog
type VoiceCatalogService interface {
	// List returns the curated catalog
	List(ctx context.Context) ([]domain.Voice, error)

	// Get returns a single voice by ID
	Get(ctx context.Context, voiceID string) (*domain.Voice, error)
}

// FeedService renders a show's podcast RSS feed
type FeedService interface {
	// Feed returns the RSS 2.0 document for the show
	Feed(ctx context.Context, showID string) ([]byte, error)
}

// ArtworkColorService extracts accent colors from episode artwork
type ArtworkColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
