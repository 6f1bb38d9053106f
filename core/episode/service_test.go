// ABOUTME: Tests for episode generation and listing
// ABOUTME: Covers segment filtering, synthesis order, dedup, checkout gating, and show notes

package episode

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
)

func confirmedSegment(text string) domain.Segment {
	return domain.Segment{Text: text, VoiceID: "v-brian", Confirmed: true}
}

func TestGenerateSynthesizesConfirmedSegmentsInOrder(t *testing.T) {
	synth := &mockSynthesizer{}
	storage := &mockStorage{}
	blobs := &mockBlobStore{}

	svc := NewService(testDeps(), synth, storage, blobs, nil)
	ep, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID: "show-1",
		Title:  "How Rivers Remember",
		Segments: []domain.Segment{
			confirmedSegment("First paragraph."),
			{Text: "Skipped, not confirmed.", VoiceID: "v-brian"},
			{Text: "Skipped, no voice.", Confirmed: true},
			confirmedSegment("Second paragraph."),
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(synth.calls) != 2 {
		t.Fatalf("synthesized %d segments, want 2: %v", len(synth.calls), synth.calls)
	}
	if synth.calls[0] != "First paragraph." || synth.calls[1] != "Second paragraph." {
		t.Errorf("synthesis order = %v", synth.calls)
	}

	// The mock echoes text as audio, so the combined file is the
	// concatenation in segment order
	wantSize := int64(len("First paragraph.") + len("Second paragraph."))
	if ep.FileSize != wantSize {
		t.Errorf("FileSize = %d, want %d", ep.FileSize, wantSize)
	}

	if len(storage.savedEpisodes) != 1 {
		t.Fatalf("saved %d episodes, want 1", len(storage.savedEpisodes))
	}
	if len(blobs.putKeys) != 1 || !strings.HasPrefix(blobs.putKeys[0], "episodes/") || !strings.HasSuffix(blobs.putKeys[0], ".mp3") {
		t.Errorf("blob keys = %v", blobs.putKeys)
	}
	if !strings.HasPrefix(ep.AudioURL, "https://media.example.org/episodes/") {
		t.Errorf("AudioURL = %q", ep.AudioURL)
	}
}

func TestGenerateRejectsEmptyPlan(t *testing.T) {
	svc := NewService(testDeps(), &mockSynthesizer{}, &mockStorage{}, &mockBlobStore{}, nil)

	tests := []struct {
		name     string
		segments []domain.Segment
	}{
		{name: "no segments", segments: nil},
		{name: "nothing confirmed", segments: []domain.Segment{{Text: "Text.", VoiceID: "v-brian"}}},
		{name: "no voices", segments: []domain.Segment{{Text: "Text.", Confirmed: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), GenerateRequest{
				ShowID:   "show-1",
				Title:    "Title",
				Segments: tt.segments,
			})

			var validation *errors.ValidationError
			if !stderrors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestGenerateReturnsExistingEpisodeForSameSource(t *testing.T) {
	existing := &domain.Episode{ID: "ep-1", ShowID: "show-1", SourceURL: "https://example.org/article"}
	synth := &mockSynthesizer{}
	storage := &mockStorage{
		FindEpisodeBySourceURLFunc: func(ctx context.Context, sourceURL string) (*domain.Episode, error) {
			return existing, nil
		},
	}

	svc := NewService(testDeps(), synth, storage, &mockBlobStore{}, nil)
	ep, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:    "show-1",
		Title:     "Duplicate",
		SourceURL: "https://example.org/article",
		Segments:  []domain.Segment{confirmedSegment("Text.")},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if ep.ID != "ep-1" {
		t.Errorf("episode ID = %q, want the existing episode", ep.ID)
	}
	if len(synth.calls) != 0 {
		t.Error("synthesis must be skipped for an already converted source")
	}
}

func TestGenerateVerifiesCheckout(t *testing.T) {
	payment := &mockPayment{}

	svc := NewService(testDeps(), &mockSynthesizer{}, &mockStorage{}, &mockBlobStore{}, payment)
	_, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:            "show-1",
		Title:             "Paid",
		CheckoutSessionID: "cs_123",
		Segments:          []domain.Segment{confirmedSegment("Text.")},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(payment.verified) != 1 || payment.verified[0] != "cs_123" {
		t.Errorf("verified sessions = %v", payment.verified)
	}
}

func TestGenerateFailsWhenCheckoutRejected(t *testing.T) {
	payment := &mockPayment{
		VerifyFunc: func(ctx context.Context, sessionID string) error {
			return stderrors.New("session not paid")
		},
	}
	synth := &mockSynthesizer{}

	svc := NewService(testDeps(), synth, &mockStorage{}, &mockBlobStore{}, payment)
	_, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:   "show-1",
		Title:    "Unpaid",
		Segments: []domain.Segment{confirmedSegment("Text.")},
	})
	if err == nil {
		t.Fatal("expected error for rejected checkout")
	}
	if len(synth.calls) != 0 {
		t.Error("synthesis must not run for a rejected checkout")
	}
}

func TestGenerateSynthesisFailure(t *testing.T) {
	synth := &mockSynthesizer{
		SynthesizeFunc: func(ctx context.Context, text, voiceID string) ([]byte, error) {
			return nil, stderrors.New("quota exceeded")
		},
	}
	storage := &mockStorage{}

	svc := NewService(testDeps(), synth, storage, &mockBlobStore{}, nil)
	_, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:   "show-1",
		Title:    "Doomed",
		Segments: []domain.Segment{confirmedSegment("Text.")},
	})

	var apiErr *errors.ExternalAPIError
	if !stderrors.As(err, &apiErr) {
		t.Fatalf("expected ExternalAPIError, got %T: %v", err, err)
	}
	if len(storage.savedEpisodes) != 0 {
		t.Error("no episode must be saved when synthesis fails")
	}
}

func TestGenerateShowNotesFromHTML(t *testing.T) {
	storage := &mockStorage{}

	svc := NewService(testDeps(), &mockSynthesizer{}, storage, &mockBlobStore{}, nil)
	ep, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:          "show-1",
		Title:           "Notes",
		DescriptionHTML: "<p>An <strong>important</strong> read.</p>",
		Segments:        []domain.Segment{confirmedSegment("Text.")},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(ep.Description, "**important**") {
		t.Errorf("Description = %q, want markdown show notes", ep.Description)
	}
	if strings.Contains(ep.Description, "<p>") {
		t.Errorf("Description still contains markup: %q", ep.Description)
	}
}

func TestGenerateDurationEstimate(t *testing.T) {
	audio := make([]byte, 160000)
	synth := &mockSynthesizer{
		SynthesizeFunc: func(ctx context.Context, text, voiceID string) ([]byte, error) {
			return audio, nil
		},
	}

	svc := NewService(testDeps(), synth, &mockStorage{}, &mockBlobStore{}, nil)
	ep, err := svc.Generate(context.Background(), GenerateRequest{
		ShowID:   "show-1",
		Title:    "Ten seconds",
		Segments: []domain.Segment{confirmedSegment("Text.")},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if ep.Duration != 10 {
		t.Errorf("Duration = %d, want 10", ep.Duration)
	}
	if ep.FileSize != 160000 {
		t.Errorf("FileSize = %d, want 160000", ep.FileSize)
	}
}

func TestGetShowNotFound(t *testing.T) {
	svc := NewService(testDeps(), &mockSynthesizer{}, &mockStorage{}, &mockBlobStore{}, nil)

	_, err := svc.GetShow(context.Background(), "missing")

	var notFound *errors.NotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestCreateShow(t *testing.T) {
	storage := &mockStorage{}
	var saved *domain.Show
	storage.SaveShowFunc = func(ctx context.Context, show *domain.Show) error {
		saved = show
		return nil
	}

	svc := NewService(testDeps(), &mockSynthesizer{}, storage, &mockBlobStore{}, nil)
	show, err := svc.CreateShow(context.Background(), "My Blog, Read Aloud", "Articles as audio", "anoncast.net", "https://media.example.org/art.jpg")
	if err != nil {
		t.Fatalf("CreateShow() error = %v", err)
	}

	if show.ID == "" {
		t.Error("show ID must be assigned")
	}
	if saved == nil || saved.ID != show.ID {
		t.Error("show was not persisted")
	}
}
