// ABOUTME: Tests for voice catalog curation
// ABOUTME: Covers preferred ordering, exclusions, backfill, capping, and lookup errors

package voices

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"
)

type mockSynthesizer struct {
	VoicesFunc func(ctx context.Context) ([]domain.Voice, error)
	VoiceFunc  func(ctx context.Context, voiceID string) (*domain.Voice, error)
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	return nil, nil
}

func (m *mockSynthesizer) Voices(ctx context.Context) ([]domain.Voice, error) {
	if m.VoicesFunc != nil {
		return m.VoicesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSynthesizer) Voice(ctx context.Context, voiceID string) (*domain.Voice, error) {
	if m.VoiceFunc != nil {
		return m.VoiceFunc(ctx, voiceID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps() interfaces.Dependencies {
	return interfaces.Dependencies{Logger: &mockLogger{}}
}

func testPolicy() CatalogPolicy {
	return CatalogPolicy{
		PreferredIDs:     []string{"v-brian", "v-matilda", "v-liam"},
		ExcludedIDs:      []string{"v-laura"},
		Limit:            4,
		BackfillCategory: "premade",
		CacheTTL:         time.Hour,
	}
}

func premadeVoice(id string) domain.Voice {
	return domain.Voice{ID: id, Name: id, Category: "premade"}
}

func TestListPreferredOrderWins(t *testing.T) {
	synth := &mockSynthesizer{
		VoicesFunc: func(ctx context.Context) ([]domain.Voice, error) {
			// Provider order deliberately disagrees with the lineup order
			return []domain.Voice{
				premadeVoice("v-liam"),
				premadeVoice("v-brian"),
				premadeVoice("v-matilda"),
			}, nil
		},
	}

	svc := NewService(testDeps(), synth, testPolicy())
	lineup, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"v-brian", "v-matilda", "v-liam"}
	if len(lineup) != len(want) {
		t.Fatalf("got %d voices, want %d", len(lineup), len(want))
	}
	for i, id := range want {
		if lineup[i].ID != id {
			t.Errorf("lineup[%d] = %q, want %q", i, lineup[i].ID, id)
		}
	}
}

func TestListBackfillsFromPremade(t *testing.T) {
	synth := &mockSynthesizer{
		VoicesFunc: func(ctx context.Context) ([]domain.Voice, error) {
			return []domain.Voice{
				premadeVoice("v-brian"),
				premadeVoice("v-extra-1"),
				{ID: "v-cloned", Name: "Cloned", Category: "cloned"},
				premadeVoice("v-laura"),
				premadeVoice("v-extra-2"),
			}, nil
		},
	}

	svc := NewService(testDeps(), synth, testPolicy())
	lineup, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"v-brian", "v-extra-1", "v-extra-2"}
	if len(lineup) != len(want) {
		t.Fatalf("got %v, want %v", lineup, want)
	}
	for i, id := range want {
		if lineup[i].ID != id {
			t.Errorf("lineup[%d] = %q, want %q", i, lineup[i].ID, id)
		}
	}
}

func TestListExcludedNeverOffered(t *testing.T) {
	synth := &mockSynthesizer{
		VoicesFunc: func(ctx context.Context) ([]domain.Voice, error) {
			return []domain.Voice{premadeVoice("v-laura"), premadeVoice("v-brian")}, nil
		},
	}

	svc := NewService(testDeps(), synth, testPolicy())
	lineup, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	for _, v := range lineup {
		if v.ID == "v-laura" {
			t.Error("excluded voice made it into the lineup")
		}
	}
}

func TestListCapsAtLimit(t *testing.T) {
	synth := &mockSynthesizer{
		VoicesFunc: func(ctx context.Context) ([]domain.Voice, error) {
			var vs []domain.Voice
			for i := 0; i < 20; i++ {
				vs = append(vs, premadeVoice(fmt.Sprintf("v-%02d", i)))
			}
			return vs, nil
		},
	}

	svc := NewService(testDeps(), synth, testPolicy())
	lineup, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(lineup) != 4 {
		t.Errorf("got %d voices, want the limit of 4", len(lineup))
	}
}

func TestListProviderFailure(t *testing.T) {
	synth := &mockSynthesizer{
		VoicesFunc: func(ctx context.Context) ([]domain.Voice, error) {
			return nil, stderrors.New("upstream 503")
		},
	}

	svc := NewService(testDeps(), synth, testPolicy())
	_, err := svc.List(context.Background())

	var apiErr *errors.ExternalAPIError
	if !stderrors.As(err, &apiErr) {
		t.Fatalf("expected ExternalAPIError, got %T: %v", err, err)
	}
}

func TestGetUnknownVoice(t *testing.T) {
	svc := NewService(testDeps(), &mockSynthesizer{}, testPolicy())

	_, err := svc.Get(context.Background(), "v-missing")

	var notFound *errors.NotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestGetEmptyID(t *testing.T) {
	svc := NewService(testDeps(), &mockSynthesizer{}, testPolicy())

	_, err := svc.Get(context.Background(), "")

	var validation *errors.ValidationError
	if !stderrors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}
