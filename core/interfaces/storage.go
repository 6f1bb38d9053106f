// ABOUTME: Storage interfaces for persisting domain entities and media blobs
// ABOUTME: Defines contracts for the episode repository, blob store, and payment collaborator

package interfaces

import (
	"context"
	"io"

	"anoncast-api/core/domain"
)

// EpisodeStorage defines the interface for show and episode persistence
type EpisodeStorage interface {
	// SaveShow persists a show
	SaveShow(ctx context.Context, show *domain.Show) error

	// GetShow retrieves a show by ID
	GetShow(ctx context.Context, id string) (*domain.Show, error)

	// SaveEpisode persists an episode
	SaveEpisode(ctx context.Context, episode *domain.Episode) error

	// ListEpisodes returns all episodes, newest first
	ListEpisodes(ctx context.Context) ([]domain.Episode, error)

	// ListEpisodesByShow returns a show's episodes, newest first
	ListEpisodesByShow(ctx context.Context, showID string) ([]domain.Episode, error)

	// FindEpisodeBySourceURL returns the episode generated from a source
	// article, if any; the source URL is the dedup key
	FindEpisodeBySourceURL(ctx context.Context, sourceURL string) (*domain.Episode, error)
}

// BlobStore defines the interface for audio and image blob storage
type BlobStore interface {
	// Put stores a blob under the given key and returns its public URL
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Open returns a reader over the stored blob and its size in bytes
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
}

// PaymentAuthorizer is the opaque checkout collaborator. Episode generation
// requires an authorization obtained out of band.
type PaymentAuthorizer interface {
	// Verify confirms a checkout session completed successfully
	Verify(ctx context.Context, sessionID string) error
}
