// ABOUTME: Filesystem-backed blob store for generated audio files
// ABOUTME: Writes under a media directory and returns proxied public URLs

package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store implements the BlobStore interface on the local filesystem.
// Blobs are served back through the audio proxy endpoint rather than
// exposing filesystem paths.
type Store struct {
	mediaDir      string
	publicBaseURL string
}

// NewStore creates a blob store rooted at mediaDir. The directory is
// created if it does not exist.
func NewStore(mediaDir, publicBaseURL string) (*Store, error) {
	if mediaDir == "" {
		return nil, errors.New("media directory cannot be empty")
	}

	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	return &Store{
		mediaDir:      mediaDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put stores a blob and returns the proxied public URL it will be
// served from
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.publicBaseURL + "/audio/" + filepath.Base(key), nil
}

// Open returns a reader over the stored blob and its size in bytes
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("blob not found: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open blob: %w", err)
	}

	return f, info.Size(), nil
}

// resolve maps a blob key to a filesystem path, rejecting keys that
// would escape the media directory
func (s *Store) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("blob key cannot be empty")
	}

	cleaned := filepath.Clean("/" + key)
	path := filepath.Join(s.mediaDir, cleaned)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve blob path: %w", err)
	}
	root, err := filepath.Abs(s.mediaDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve media directory: %w", err)
	}
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", errors.New("blob key escapes media directory")
	}

	return path, nil
}
