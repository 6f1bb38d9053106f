// ABOUTME: Episode and show handlers for the Huma API
// ABOUTME: Exposes episode generation, listing, and show management endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"anoncast-api/api/dto/mappers"
	"anoncast-api/api/dto/requests"
	"anoncast-api/api/dto/responses"
	"anoncast-api/core/domain"
	"anoncast-api/core/episode"
)

// EpisodeService is the episode service surface the handler consumes
type EpisodeService interface {
	Generate(ctx context.Context, req episode.GenerateRequest) (*domain.Episode, error)
	List(ctx context.Context) ([]domain.Episode, error)
	ListByShow(ctx context.Context, showID string) ([]domain.Episode, error)
	GetShow(ctx context.Context, showID string) (*domain.Show, error)
	CreateShow(ctx context.Context, title, description, author, imageURL string) (*domain.Show, error)
}

// EpisodesHandler handles episode generation and show management
type EpisodesHandler struct {
	episodes      EpisodeService
	publicBaseURL string
}

// NewEpisodesHandler creates a new episodes handler
func NewEpisodesHandler(episodes EpisodeService, publicBaseURL string) *EpisodesHandler {
	return &EpisodesHandler{
		episodes:      episodes,
		publicBaseURL: publicBaseURL,
	}
}

// RegisterRoutes registers all episode and show routes
func (h *EpisodesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateEpisode",
		Method:      http.MethodPost,
		Path:        "/episodes/generate",
		Summary:     "Generate an episode",
		Description: "Synthesizes the confirmed narration segments and publishes the episode",
		Tags:        []string{"Episodes"},
	}, h.GenerateEpisode)

	huma.Register(api, huma.Operation{
		OperationID: "listEpisodes",
		Method:      http.MethodGet,
		Path:        "/episodes",
		Summary:     "List episodes",
		Description: "Returns all published episodes, newest first",
		Tags:        []string{"Episodes"},
	}, h.ListEpisodes)

	huma.Register(api, huma.Operation{
		OperationID: "createShow",
		Method:      http.MethodPost,
		Path:        "/shows",
		Summary:     "Create a show",
		Description: "Sets up a podcast show for a source blog",
		Tags:        []string{"Shows"},
	}, h.CreateShow)

	huma.Register(api, huma.Operation{
		OperationID: "getShow",
		Method:      http.MethodGet,
		Path:        "/shows/{showId}",
		Summary:     "Get a show",
		Description: "Returns a show by its identifier",
		Tags:        []string{"Shows"},
	}, h.GetShow)

	huma.Register(api, huma.Operation{
		OperationID: "listShowEpisodes",
		Method:      http.MethodGet,
		Path:        "/shows/{showId}/episodes",
		Summary:     "List a show's episodes",
		Description: "Returns the show's episodes, newest first",
		Tags:        []string{"Shows"},
	}, h.ListShowEpisodes)
}

// GenerateEpisodeInput defines the input for the GenerateEpisode operation
type GenerateEpisodeInput struct {
	Body requests.GenerateEpisodeRequest
}

// GenerateEpisodeOutput defines the output for the GenerateEpisode operation
type GenerateEpisodeOutput struct {
	Body responses.EpisodeResponse
}

// GenerateEpisode synthesizes and publishes one episode
func (h *EpisodesHandler) GenerateEpisode(ctx context.Context, input *GenerateEpisodeInput) (*GenerateEpisodeOutput, error) {
	segments := make([]domain.Segment, 0, len(input.Body.Segments))
	for _, s := range input.Body.Segments {
		segments = append(segments, domain.Segment{
			Text:      s.Text,
			VoiceID:   s.VoiceID,
			Confirmed: s.Confirmed,
		})
	}

	ep, err := h.episodes.Generate(ctx, episode.GenerateRequest{
		ShowID:            input.Body.ShowID,
		Title:             input.Body.Title,
		DescriptionHTML:   input.Body.DescriptionHTML,
		SourceURL:         input.Body.SourceURL,
		ImageURL:          input.Body.ImageURL,
		Segments:          segments,
		CheckoutSessionID: input.Body.CheckoutSessionID,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GenerateEpisodeOutput{Body: mappers.ToEpisodeResponse(*ep)}, nil
}

// ListEpisodesOutput defines the output for the ListEpisodes operation
type ListEpisodesOutput struct {
	Body struct {
		Episodes []responses.EpisodeResponse `json:"episodes"`
	}
}

// ListEpisodes returns all published episodes
func (h *EpisodesHandler) ListEpisodes(ctx context.Context, input *struct{}) (*ListEpisodesOutput, error) {
	episodes, err := h.episodes.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &ListEpisodesOutput{}
	out.Body.Episodes = mappers.ToEpisodeResponses(episodes)
	return out, nil
}

// CreateShowInput defines the input for the CreateShow operation
type CreateShowInput struct {
	Body requests.CreateShowRequest
}

// ShowOutput defines the output for show operations
type ShowOutput struct {
	Body responses.ShowResponse
}

// CreateShow sets up a new show
func (h *EpisodesHandler) CreateShow(ctx context.Context, input *CreateShowInput) (*ShowOutput, error) {
	show, err := h.episodes.CreateShow(ctx,
		input.Body.Title, input.Body.Description, input.Body.Author, input.Body.ImageURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShowOutput{Body: mappers.ToShowResponse(*show, h.publicBaseURL)}, nil
}

// ShowInput defines the path input for show lookups
type ShowInput struct {
	ShowID string `path:"showId" doc:"Show identifier"`
}

// GetShow returns a show by ID
func (h *EpisodesHandler) GetShow(ctx context.Context, input *ShowInput) (*ShowOutput, error) {
	show, err := h.episodes.GetShow(ctx, input.ShowID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShowOutput{Body: mappers.ToShowResponse(*show, h.publicBaseURL)}, nil
}

// ListShowEpisodes returns the show's episodes
func (h *EpisodesHandler) ListShowEpisodes(ctx context.Context, input *ShowInput) (*ListEpisodesOutput, error) {
	episodes, err := h.episodes.ListByShow(ctx, input.ShowID)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &ListEpisodesOutput{}
	out.Body.Episodes = mappers.ToEpisodeResponses(episodes)
	return out, nil
}
