// ABOUTME: Voices handler for the Huma API
// ABOUTME: Exposes the curated narration voice catalog

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"
)

// VoicesHandler handles voice catalog requests
type VoicesHandler struct {
	voiceCatalog interfaces.VoiceCatalogService
}

// NewVoicesHandler creates a new voices handler
func NewVoicesHandler(voiceCatalog interfaces.VoiceCatalogService) *VoicesHandler {
	return &VoicesHandler{
		voiceCatalog: voiceCatalog,
	}
}

// RegisterRoutes registers all voice-related routes
func (h *VoicesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listVoices",
		Method:      http.MethodGet,
		Path:        "/voices",
		Summary:     "List narration voices",
		Description: "Returns the curated catalog of narration voices",
		Tags:        []string{"Voices"},
	}, h.ListVoices)

	huma.Register(api, huma.Operation{
		OperationID: "getVoice",
		Method:      http.MethodGet,
		Path:        "/voices/{voiceId}",
		Summary:     "Get a narration voice",
		Description: "Returns a single voice by its identifier",
		Tags:        []string{"Voices"},
	}, h.GetVoice)
}

// ListVoicesOutput defines the output for the ListVoices operation
type ListVoicesOutput struct {
	Body struct {
		Voices []domain.Voice `json:"voices"`
	}
}

// ListVoices returns the curated voice catalog
func (h *VoicesHandler) ListVoices(ctx context.Context, input *struct{}) (*ListVoicesOutput, error) {
	voices, err := h.voiceCatalog.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &ListVoicesOutput{}
	out.Body.Voices = voices
	return out, nil
}

// GetVoiceInput defines the input for the GetVoice operation
type GetVoiceInput struct {
	VoiceID string `path:"voiceId" doc:"Voice identifier"`
}

// GetVoiceOutput defines the output for the GetVoice operation
type GetVoiceOutput struct {
	Body domain.Voice
}

// GetVoice returns a single voice by ID
func (h *VoicesHandler) GetVoice(ctx context.Context, input *GetVoiceInput) (*GetVoiceOutput, error) {
	voice, err := h.voiceCatalog.Get(ctx, input.VoiceID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetVoiceOutput{Body: *voice}, nil
}
