// ABOUTME: SQLite-based persistence for shows and episodes
// ABOUTME: Provides a file-backed store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"anoncast-api/core/domain"
)

// Store implements the EpisodeStorage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a new SQLite episode store
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "episodes.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the shows and episodes tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS shows (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			show_id TEXT NOT NULL REFERENCES shows(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			audio_url TEXT NOT NULL,
			file_size INTEGER NOT NULL DEFAULT 0,
			duration INTEGER NOT NULL DEFAULT 0,
			source_url TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			published_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_show ON episodes(show_id);
		CREATE INDEX IF NOT EXISTS idx_episodes_source ON episodes(source_url);
	`

	_, err := s.db.Exec(query)
	return err
}

// SaveShow persists a show, replacing any existing row with the same ID
func (s *Store) SaveShow(ctx context.Context, show *domain.Show) error {
	if show == nil {
		return errors.New("show cannot be nil")
	}

	query := `
		INSERT OR REPLACE INTO shows (id, title, description, author, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		show.ID, show.Title, show.Description, show.Author, show.ImageURL,
		show.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save show: %w", err)
	}

	return nil
}

// GetShow retrieves a show by ID. Returns nil when the show does not exist.
func (s *Store) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	if id == "" {
		return nil, errors.New("show ID cannot be empty")
	}

	query := "SELECT id, title, description, author, image_url, created_at FROM shows WHERE id = ?"

	var show domain.Show
	var createdAt int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&show.ID, &show.Title, &show.Description, &show.Author, &show.ImageURL, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	show.CreatedAt = time.Unix(createdAt, 0)
	return &show, nil
}

// SaveEpisode persists an episode, replacing any existing row with the same ID
func (s *Store) SaveEpisode(ctx context.Context, episode *domain.Episode) error {
	if episode == nil {
		return errors.New("episode cannot be nil")
	}

	query := `
		INSERT OR REPLACE INTO episodes
			(id, show_id, title, description, audio_url, file_size, duration, source_url, image_url, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		episode.ID, episode.ShowID, episode.Title, episode.Description,
		episode.AudioURL, episode.FileSize, episode.Duration,
		episode.SourceURL, episode.ImageURL, episode.PublishedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save episode: %w", err)
	}

	return nil
}

const episodeColumns = "id, show_id, title, description, audio_url, file_size, duration, source_url, image_url, published_at"

// ListEpisodes returns all episodes ordered newest first
func (s *Store) ListEpisodes(ctx context.Context) ([]domain.Episode, error) {
	query := "SELECT " + episodeColumns + " FROM episodes ORDER BY published_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

// ListEpisodesByShow returns a show's episodes ordered newest first
func (s *Store) ListEpisodesByShow(ctx context.Context, showID string) ([]domain.Episode, error) {
	if showID == "" {
		return nil, errors.New("show ID cannot be empty")
	}

	query := "SELECT " + episodeColumns + " FROM episodes WHERE show_id = ? ORDER BY published_at DESC"

	rows, err := s.db.QueryContext(ctx, query, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

// FindEpisodeBySourceURL returns the episode generated from a source article.
// Returns nil when no episode matches.
func (s *Store) FindEpisodeBySourceURL(ctx context.Context, sourceURL string) (*domain.Episode, error) {
	if sourceURL == "" {
		return nil, errors.New("source URL cannot be empty")
	}

	query := "SELECT " + episodeColumns + " FROM episodes WHERE source_url = ? ORDER BY published_at DESC LIMIT 1"

	rows, err := s.db.QueryContext(ctx, query, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to find episode: %w", err)
	}
	defer rows.Close()

	episodes, err := scanEpisodes(rows)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, nil
	}

	return &episodes[0], nil
}

// scanEpisodes reads episode rows into domain models
func scanEpisodes(rows *sql.Rows) ([]domain.Episode, error) {
	var episodes []domain.Episode

	for rows.Next() {
		var ep domain.Episode
		var publishedAt int64

		err := rows.Scan(
			&ep.ID, &ep.ShowID, &ep.Title, &ep.Description,
			&ep.AudioURL, &ep.FileSize, &ep.Duration,
			&ep.SourceURL, &ep.ImageURL, &publishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}

		ep.PublishedAt = time.Unix(publishedAt, 0)
		episodes = append(episodes, ep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read episodes: %w", err)
	}

	return episodes, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
