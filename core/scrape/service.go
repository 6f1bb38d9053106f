// ABOUTME: Service layer implementation for article content extraction
// ABOUTME: Drives fetch, platform detection, the strategy chain, and normalization

package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Service runs the content-extraction pipeline
type Service struct {
	deps    interfaces.Dependencies
	fetcher *Fetcher
	opts    Options
}

// NewService creates a scrape service. backend may be nil when no headless
// rendering backend is configured.
func NewService(deps interfaces.Dependencies, backend interfaces.RenderBackend, opts Options) *Service {
	return &Service{
		deps:    deps,
		fetcher: NewFetcher(deps, backend, opts),
		opts:    opts,
	}
}

// Scrape extracts the article at rawURL into a ScrapedContent.
// Extraction never returns an empty-but-successful result: zero usable
// paragraphs is a NoContentError because downstream narration (and its
// billing) requires at least one segment.
func (s *Service) Scrape(ctx context.Context, rawURL string) (*domain.ScrapedContent, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "invalid URL format"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errors.ValidationError{Field: "url", Message: "URL scheme must be http or https"}
	}

	// Check cache first
	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("scrape:%s", rawURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.ScrapedContent
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	fetched, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(fetched.HTML))
	if docErr != nil {
		s.deps.Logger.Warn("Document did not parse, continuing with rendered text only", map[string]interface{}{
			"url":   rawURL,
			"error": docErr.Error(),
		})
		doc = nil
	}

	// Reader-mode parse feeds both a strategy and the metadata fallbacks
	var article *readability.Article
	if fetched.HTML != "" {
		if parsedArticle, err := readability.FromReader(strings.NewReader(fetched.HTML), parsed); err == nil {
			article = &parsedArticle
		}
	}

	platform := domain.PlatformCustom
	if doc != nil {
		platform = DetectPlatform(rawURL, doc)
	}

	sc := &strategyContext{
		url:          rawURL,
		platform:     platform,
		doc:          doc,
		renderedText: fetched.RenderedText,
		article:      article,
		opts:         s.opts,
	}

	paragraphs := s.runStrategyChain(sc)
	if len(paragraphs) == 0 {
		return nil, &errors.NoContentError{URL: rawURL}
	}

	md := extractMetadata(doc, article, platform, fetched.DiscoveredImage)

	content := joinContent(paragraphs)
	wordCount := countWords(content)

	result := &domain.ScrapedContent{
		Title:             md.title,
		Author:            md.author,
		PublishDate:       md.publishDate,
		FeaturedImage:     md.featuredImage,
		Images:            md.images,
		Content:           content,
		Paragraphs:        paragraphs,
		WordCount:         wordCount,
		EstimatedReadTime: estimateReadTime(wordCount, s.opts.WordsPerMinute),
		Platform:          platform,
		URL:               rawURL,
	}

	s.deps.Logger.Info("Extraction complete", map[string]interface{}{
		"url":        rawURL,
		"platform":   platform,
		"paragraphs": len(paragraphs),
		"words":      wordCount,
		"rendered":   fetched.Rendered,
	})

	// Cache successful results
	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("scrape:%s", rawURL)
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.opts.CacheTTL)
		}
	}

	return result, nil
}

// runStrategyChain walks the priority chain and returns the first
// strategy's paragraphs that survive normalization. Strategy order is
// fixed; exhaustion means the page has no extractable content.
func (s *Service) runStrategyChain(sc *strategyContext) []string {
	for _, strat := range strategies {
		raw := strat.run(sc)
		if len(raw) == 0 {
			continue
		}

		paragraphs := normalizeParagraphs(raw, s.opts.MinParagraphLength)
		if len(paragraphs) == 0 {
			continue
		}

		s.deps.Logger.Debug("Extraction strategy succeeded", map[string]interface{}{
			"url":        sc.url,
			"strategy":   strat.name,
			"paragraphs": len(paragraphs),
		})

		return paragraphs
	}

	return nil
}
