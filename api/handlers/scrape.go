// ABOUTME: Scrape handler for the Huma API
// ABOUTME: Provides HTTP endpoints for extracting narration-ready article content

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"anoncast-api/api/dto/mappers"
	"anoncast-api/api/dto/requests"
	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"
)

// ScrapeHandler handles article extraction requests
type ScrapeHandler struct {
	scrapeService interfaces.ScrapeService
}

// NewScrapeHandler creates a new scrape handler
func NewScrapeHandler(scrapeService interfaces.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{
		scrapeService: scrapeService,
	}
}

// RegisterRoutes registers all scrape-related routes
func (h *ScrapeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scrapeArticle",
		Method:      http.MethodPost,
		Path:        "/scrape",
		Summary:     "Extract article content",
		Description: "Fetches an article page and extracts narration-ready paragraphs with metadata",
		Tags:        []string{"Scrape"},
	}, h.ScrapeArticle)

	huma.Register(api, huma.Operation{
		OperationID: "scrapeArticleByQuery",
		Method:      http.MethodGet,
		Path:        "/scrape",
		Summary:     "Extract article content by query parameter",
		Description: "GET variant of the scrape operation for simple clients",
		Tags:        []string{"Scrape"},
	}, h.ScrapeArticleByQuery)
}

// ScrapeInput defines the input for the ScrapeArticle operation
type ScrapeInput struct {
	Body requests.ScrapeRequest
}

// ScrapeQueryInput defines the input for the GET variant
type ScrapeQueryInput struct {
	URL string `query:"url" required:"true" doc:"Article URL to extract content from"`
}

// ScrapeOutput defines the output for both scrape operations
type ScrapeOutput struct {
	Body domain.ScrapedContent
}

// ScrapeArticle handles article extraction from a request body
func (h *ScrapeHandler) ScrapeArticle(ctx context.Context, input *ScrapeInput) (*ScrapeOutput, error) {
	return h.scrape(ctx, input.Body.URL)
}

// ScrapeArticleByQuery handles article extraction from a query parameter
func (h *ScrapeHandler) ScrapeArticleByQuery(ctx context.Context, input *ScrapeQueryInput) (*ScrapeOutput, error) {
	return h.scrape(ctx, input.URL)
}

func (h *ScrapeHandler) scrape(ctx context.Context, rawURL string) (*ScrapeOutput, error) {
	content, err := h.scrapeService.Scrape(ctx, rawURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ScrapeOutput{Body: mappers.ToScrapedContent(*content, rawURL)}, nil
}
