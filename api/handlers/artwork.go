// ABOUTME: Artwork color handler for the Huma API
// ABOUTME: Exposes accent color extraction for episode artwork

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"
)

// ArtworkHandler handles artwork accent color requests
type ArtworkHandler struct {
	colors interfaces.ArtworkColorService
}

// NewArtworkHandler creates a new artwork handler
func NewArtworkHandler(colors interfaces.ArtworkColorService) *ArtworkHandler {
	return &ArtworkHandler{
		colors: colors,
	}
}

// RegisterRoutes registers the artwork routes
func (h *ArtworkHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getArtworkColor",
		Method:      http.MethodGet,
		Path:        "/artwork/color",
		Summary:     "Extract artwork accent color",
		Description: "Returns the dominant color of an artwork image for player theming",
		Tags:        []string{"Artwork"},
	}, h.GetArtworkColor)
}

// ArtworkColorInput defines the input for the GetArtworkColor operation
type ArtworkColorInput struct {
	URL string `query:"url" required:"true" doc:"Artwork image URL"`
}

// ArtworkColorOutput defines the output for the GetArtworkColor operation
type ArtworkColorOutput struct {
	Body domain.RGBColor
}

// GetArtworkColor returns the artwork's dominant color
func (h *ArtworkHandler) GetArtworkColor(ctx context.Context, input *ArtworkColorInput) (*ArtworkColorOutput, error) {
	color, err := h.colors.ExtractColor(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ArtworkColorOutput{Body: *color}, nil
}
