// ABOUTME: Shared test doubles for the episode package
// ABOUTME: Hand-rolled mocks with function fields for per-test behavior

package episode

import (
	"context"
	"io"

	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps() interfaces.Dependencies {
	return interfaces.Dependencies{Logger: &mockLogger{}}
}

type mockSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, text, voiceID string) ([]byte, error)

	calls []string
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	m.calls = append(m.calls, text)
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text, voiceID)
	}
	return []byte(text), nil
}

func (m *mockSynthesizer) Voices(ctx context.Context) ([]domain.Voice, error) {
	return nil, nil
}

func (m *mockSynthesizer) Voice(ctx context.Context, voiceID string) (*domain.Voice, error) {
	return nil, nil
}

type mockStorage struct {
	SaveShowFunc               func(ctx context.Context, show *domain.Show) error
	GetShowFunc                func(ctx context.Context, id string) (*domain.Show, error)
	SaveEpisodeFunc            func(ctx context.Context, episode *domain.Episode) error
	ListEpisodesFunc           func(ctx context.Context) ([]domain.Episode, error)
	ListEpisodesByShowFunc     func(ctx context.Context, showID string) ([]domain.Episode, error)
	FindEpisodeBySourceURLFunc func(ctx context.Context, sourceURL string) (*domain.Episode, error)

	savedEpisodes []*domain.Episode
}

func (m *mockStorage) SaveShow(ctx context.Context, show *domain.Show) error {
	if m.SaveShowFunc != nil {
		return m.SaveShowFunc(ctx, show)
	}
	return nil
}

func (m *mockStorage) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	if m.GetShowFunc != nil {
		return m.GetShowFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStorage) SaveEpisode(ctx context.Context, episode *domain.Episode) error {
	m.savedEpisodes = append(m.savedEpisodes, episode)
	if m.SaveEpisodeFunc != nil {
		return m.SaveEpisodeFunc(ctx, episode)
	}
	return nil
}

func (m *mockStorage) ListEpisodes(ctx context.Context) ([]domain.Episode, error) {
	if m.ListEpisodesFunc != nil {
		return m.ListEpisodesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStorage) ListEpisodesByShow(ctx context.Context, showID string) ([]domain.Episode, error) {
	if m.ListEpisodesByShowFunc != nil {
		return m.ListEpisodesByShowFunc(ctx, showID)
	}
	return nil, nil
}

func (m *mockStorage) FindEpisodeBySourceURL(ctx context.Context, sourceURL string) (*domain.Episode, error) {
	if m.FindEpisodeBySourceURLFunc != nil {
		return m.FindEpisodeBySourceURLFunc(ctx, sourceURL)
	}
	return nil, nil
}

type mockBlobStore struct {
	PutFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)

	putKeys []string
}

func (m *mockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.putKeys = append(m.putKeys, key)
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, data, contentType)
	}
	return "https://media.example.org/" + key, nil
}

func (m *mockBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	return nil, 0, nil
}

type mockPayment struct {
	VerifyFunc func(ctx context.Context, sessionID string) error

	verified []string
}

func (m *mockPayment) Verify(ctx context.Context, sessionID string) error {
	m.verified = append(m.verified, sessionID)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, sessionID)
	}
	return nil
}
