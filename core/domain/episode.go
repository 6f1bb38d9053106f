// ABOUTME: Show and Episode domain models for published podcast content
// ABOUTME: Provides validation and constructors mirroring the episodes/shows schema

package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Show represents a podcast show, one per source blog or user
type Show struct {
	// ID is the unique identifier (UUID) for the show
	ID string

	// Title is the show title
	Title string

	// Description provides a brief description of the show
	Description string

	// Author is the show author displayed in podcast directories
	Author string

	// ImageURL is the show artwork URL
	ImageURL string

	// CreatedAt is when the show was created
	CreatedAt time.Time
}

// Episode represents a single published audio episode
type Episode struct {
	// ID is the unique identifier (UUID) for the episode
	ID string

	// ShowID references the owning show
	ShowID string

	// Title is the episode title, usually the article title
	Title string

	// Description is the episode show notes
	Description string

	// AudioURL is the publicly reachable audio file URL
	AudioURL string

	// FileSize is the audio file size in bytes
	FileSize int64

	// Duration is the audio length in seconds
	Duration int

	// SourceURL is the article the episode was generated from; it doubles
	// as the dedup key for "already converted this article" checks
	SourceURL string

	// ImageURL is the episode artwork URL
	ImageURL string

	// PublishedAt is when the episode was published
	PublishedAt time.Time
}

// NewShow creates a new Show instance with validation
func NewShow(title, description, author string) (*Show, error) {
	if title == "" {
		return nil, errors.New("show title cannot be empty")
	}

	return &Show{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Author:      author,
		CreatedAt:   time.Now(),
	}, nil
}

// NewEpisode creates a new Episode instance with validation
func NewEpisode(showID, title, audioURL string) (*Episode, error) {
	if showID == "" {
		return nil, errors.New("episode show ID cannot be empty")
	}

	if title == "" {
		return nil, errors.New("episode title cannot be empty")
	}

	if audioURL == "" {
		return nil, errors.New("episode audio URL cannot be empty")
	}

	parsedURL, err := url.Parse(audioURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("episode audio URL must be valid")
	}

	return &Episode{
		ID:          uuid.New().String(),
		ShowID:      showID,
		Title:       title,
		AudioURL:    audioURL,
		PublishedAt: time.Now(),
	}, nil
}
