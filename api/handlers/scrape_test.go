// ABOUTME: Tests for the scrape handler
// ABOUTME: Exercises both endpoint variants and error mapping through humatest

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/scrape"
)

// mockScrapeService is a mock implementation of the scrape service
type mockScrapeService struct {
	scrapeFunc func(ctx context.Context, rawURL string) (*domain.ScrapedContent, error)
}

func (m *mockScrapeService) Scrape(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, rawURL)
	}
	return nil, nil
}

func scrapedFixture(url string) *domain.ScrapedContent {
	return &domain.ScrapedContent{
		Title:             "How Rivers Remember",
		Author:            "Jordan Reyes",
		Content:           "First paragraph of the article body.",
		Paragraphs:        []string{"First paragraph of the article body."},
		WordCount:         6,
		EstimatedReadTime: "1 min read",
		Platform:          domain.PlatformCustom,
		URL:               url,
	}
}

func TestScrapeArticlePost(t *testing.T) {
	var requested string
	service := &mockScrapeService{
		scrapeFunc: func(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
			requested = rawURL
			return scrapedFixture(rawURL), nil
		},
	}

	_, api := humatest.New(t)
	NewScrapeHandler(service).RegisterRoutes(api)

	resp := api.Post("/scrape", map[string]any{
		"url": "https://example.org/article",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if requested != "https://example.org/article" {
		t.Errorf("service called with %q", requested)
	}

	var body domain.ScrapedContent
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Title != "How Rivers Remember" {
		t.Errorf("expected title in response, got %q", body.Title)
	}
	if len(body.Paragraphs) != 1 {
		t.Errorf("expected 1 paragraph, got %d", len(body.Paragraphs))
	}
}

func TestScrapeArticleAuthorFallsBackToSourceDomain(t *testing.T) {
	service := &mockScrapeService{
		scrapeFunc: func(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
			content := scrapedFixture(rawURL)
			content.Author = scrape.DefaultAuthor
			return content, nil
		},
	}

	_, api := humatest.New(t)
	NewScrapeHandler(service).RegisterRoutes(api)

	resp := api.Post("/scrape", map[string]any{
		"url": "https://www.example.org/article",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body domain.ScrapedContent
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Author != "example.org" {
		t.Errorf("Author = %q, want the source domain", body.Author)
	}
}

func TestScrapeArticleGetVariant(t *testing.T) {
	service := &mockScrapeService{
		scrapeFunc: func(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
			return scrapedFixture(rawURL), nil
		},
	}

	_, api := humatest.New(t)
	NewScrapeHandler(service).RegisterRoutes(api)

	resp := api.Get("/scrape?url=https%3A%2F%2Fexample.org%2Farticle")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestScrapeArticleErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"no content", &errors.NoContentError{URL: "https://example.org"}, http.StatusUnprocessableEntity},
		{"fetch failure", &errors.FetchError{URL: "https://example.org", StatusCode: 404}, http.StatusBadGateway},
		{"render unavailable", &errors.RenderUnavailableError{Message: "not configured"}, http.StatusServiceUnavailable},
		{"render timeout", &errors.RenderTimeoutError{URL: "https://example.org", Stage: "connect"}, http.StatusGatewayTimeout},
		{"invalid url", &errors.ValidationError{Field: "url", Message: "missing host"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockScrapeService{
				scrapeFunc: func(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
					return nil, tt.err
				},
			}

			_, api := humatest.New(t)
			NewScrapeHandler(service).RegisterRoutes(api)

			resp := api.Post("/scrape", map[string]any{"url": "https://example.org"})

			if resp.Code != tt.expectedCode {
				t.Errorf("expected %d, got %d", tt.expectedCode, resp.Code)
			}
		})
	}
}
