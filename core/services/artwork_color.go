// ABOUTME: Artwork accent color extraction for episode and show images
// ABOUTME: Uses K-means clustering to find the most prominent color in the artwork

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	defaultColorValue = 128
	httpTimeout       = 10 * time.Second
	userAgent         = "Mozilla/5.0 (compatible; AnoncastArtwork/1.0)"
)

// ArtworkColorService extracts accent colors from episode artwork so
// clients can theme the player around the cover image
type ArtworkColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
	cacheTTL   time.Duration
}

// NewArtworkColorService creates an artwork color service
func NewArtworkColorService(deps interfaces.Dependencies) *ArtworkColorService {
	return &ArtworkColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		cacheTTL: 24 * time.Hour,
	}
}

// ExtractColor extracts the prominent color from an artwork URL. Failures
// degrade to a neutral gray rather than erroring; artwork color is
// cosmetic and must never break an episode response.
func (s *ArtworkColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if cached, err := s.GetCachedColor(ctx, imageURL); err == nil {
		return cached, nil
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract artwork color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("artworkColor:%s", imageURL)
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), s.cacheTTL)
	}

	return color, nil
}

// GetCachedColor retrieves a color from cache without computing it
func (s *ArtworkColorService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("artworkColor:%s", imageURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	return nil, fmt.Errorf("color not found in cache")
}

// extractColorFromURL downloads the artwork and runs the clustering.
// prominentcolor panics on some malformed images, hence the recover.
func (s *ArtworkColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG cannot be decoded as a raster image
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("artwork has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Masked extraction misses artwork dominated by background color;
	// retry unmasked before giving up
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from artwork")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the neutral gray fallback
func (s *ArtworkColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
