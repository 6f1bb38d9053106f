// ABOUTME: Request DTOs for article scraping endpoints
// ABOUTME: Defines the structure for content extraction requests

package requests

// ScrapeRequest represents a request to extract article content from a URL
type ScrapeRequest struct {
	// URL is the article page to extract
	URL string `json:"url" required:"true" format:"uri" example:"https://example.com/article" doc:"Article URL to extract content from"`
}
