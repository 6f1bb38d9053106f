// ABOUTME: Response DTOs for episode and show endpoints
// ABOUTME: Defines the JSON shapes returned to podcast clients

package responses

import "time"

// EpisodeResponse is the JSON representation of a published episode
type EpisodeResponse struct {
	// ID is the episode identifier
	ID string `json:"id"`

	// ShowID is the owning show
	ShowID string `json:"showId"`

	// Title is the episode title
	Title string `json:"title"`

	// Description is the episode show notes
	Description string `json:"description,omitempty"`

	// AudioURL is the publicly reachable audio file URL
	AudioURL string `json:"audioUrl"`

	// FileSize is the audio size in bytes
	FileSize int64 `json:"fileSize,omitempty"`

	// Duration is the audio length in seconds
	Duration int `json:"duration"`

	// SourceURL is the article the episode was generated from
	SourceURL string `json:"sourceUrl,omitempty"`

	// ImageURL is the episode artwork
	ImageURL string `json:"imageUrl,omitempty"`

	// PublishedAt is the publication time
	PublishedAt time.Time `json:"publishedAt"`
}

// ShowResponse is the JSON representation of a show
type ShowResponse struct {
	// ID is the show identifier
	ID string `json:"id"`

	// Title is the show title
	Title string `json:"title"`

	// Description is a brief show description
	Description string `json:"description,omitempty"`

	// Author is the show author
	Author string `json:"author"`

	// ImageURL is the show artwork
	ImageURL string `json:"imageUrl,omitempty"`

	// FeedURL is the show's podcast RSS feed
	FeedURL string `json:"feedUrl"`

	// CreatedAt is the show creation time
	CreatedAt time.Time `json:"createdAt"`
}
