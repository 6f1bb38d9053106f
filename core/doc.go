// Package core contains the business logic for the Anoncast API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ScrapedContent, Voice, Show, Episode)
// - scrape: Article fetching and paragraph extraction pipeline
// - voices: Curated narration voice catalog
// - episode: Episode generation from narration plans
// - feed: Podcast RSS feed rendering
// - services: Supporting services such as artwork color extraction
// - errors: The extraction error taxonomy
// - interfaces: Contracts for external dependencies (cache, HTTP, speech, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "anoncast-api/core/interfaces"
//	    "anoncast-api/core/scrape"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	scrapeService := scrape.NewService(deps, renderBackend, scrape.DefaultOptions())
//
//	// Extract an article
//	content, err := scrapeService.Scrape(ctx, "https://example.com/article")
package core
