// ABOUTME: Mappers converting episode and show domain models to response DTOs
// ABOUTME: Applies the author fallback and derives feed URLs

package mappers

import (
	"strings"

	"anoncast-api/api/dto/responses"
	"anoncast-api/core/domain"
)

// fallbackAuthor is used when a show has no author recorded
const fallbackAuthor = "anoncast.net"

// ToEpisodeResponse converts an episode domain model to its response DTO
func ToEpisodeResponse(ep domain.Episode) responses.EpisodeResponse {
	return responses.EpisodeResponse{
		ID:          ep.ID,
		ShowID:      ep.ShowID,
		Title:       ep.Title,
		Description: ep.Description,
		AudioURL:    ep.AudioURL,
		FileSize:    ep.FileSize,
		Duration:    ep.Duration,
		SourceURL:   ep.SourceURL,
		ImageURL:    ep.ImageURL,
		PublishedAt: ep.PublishedAt,
	}
}

// ToEpisodeResponses converts a list of episodes
func ToEpisodeResponses(episodes []domain.Episode) []responses.EpisodeResponse {
	out := make([]responses.EpisodeResponse, 0, len(episodes))
	for _, ep := range episodes {
		out = append(out, ToEpisodeResponse(ep))
	}
	return out
}

// ToShowResponse converts a show domain model to its response DTO.
// publicBaseURL is used to derive the show's feed URL.
func ToShowResponse(show domain.Show, publicBaseURL string) responses.ShowResponse {
	author := show.Author
	if author == "" {
		author = fallbackAuthor
	}

	return responses.ShowResponse{
		ID:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		Author:      author,
		ImageURL:    show.ImageURL,
		FeedURL:     strings.TrimRight(publicBaseURL, "/") + "/feed/" + show.ID,
		CreatedAt:   show.CreatedAt,
	}
}
