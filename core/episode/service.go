// ABOUTME: Service layer implementation for episode generation and listing
// ABOUTME: Synthesizes confirmed narration segments, stores the audio, and records the episode

package episode

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/google/uuid"
)

// mp3BytesPerSecond approximates a 128 kbps MP3 stream, used to estimate
// episode duration from the synthesized byte count
const mp3BytesPerSecond = 16000

// GenerateRequest carries everything needed to produce one episode
type GenerateRequest struct {
	// ShowID is the owning show
	ShowID string

	// Title is the episode title, usually the article title
	Title string

	// DescriptionHTML is the article markup the show notes are derived
	// from; it is converted to markdown for podcast clients
	DescriptionHTML string

	// SourceURL is the article the episode narrates
	SourceURL string

	// ImageURL is the episode artwork
	ImageURL string

	// Segments is the narration plan; only confirmed segments with a
	// voice assigned are synthesized
	Segments []domain.Segment

	// CheckoutSessionID authorizes the generation when a payment
	// collaborator is configured
	CheckoutSessionID string
}

// Service handles episode generation and retrieval
type Service struct {
	deps    interfaces.Dependencies
	synth   interfaces.SpeechSynthesizer
	storage interfaces.EpisodeStorage
	blobs   interfaces.BlobStore
	payment interfaces.PaymentAuthorizer
	tomd    *md.Converter
}

// NewService creates an episode service. payment may be nil, in which case
// generation is not gated on checkout.
func NewService(
	deps interfaces.Dependencies,
	synth interfaces.SpeechSynthesizer,
	storage interfaces.EpisodeStorage,
	blobs interfaces.BlobStore,
	payment interfaces.PaymentAuthorizer,
) *Service {
	return &Service{
		deps:    deps,
		synth:   synth,
		storage: storage,
		blobs:   blobs,
		payment: payment,
		tomd:    md.NewConverter("", true, nil),
	}
}

// Generate synthesizes the confirmed segments into one audio file and
// records the resulting episode. An article already converted for the
// same show is returned as-is instead of being synthesized again.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*domain.Episode, error) {
	segments := confirmedSegments(req.Segments)
	if len(segments) == 0 {
		return nil, &errors.ValidationError{
			Field:   "segments",
			Message: "no confirmed segments with voices",
		}
	}

	if req.ShowID == "" {
		return nil, &errors.ValidationError{Field: "showId", Message: "show ID is required"}
	}
	if req.Title == "" {
		return nil, &errors.ValidationError{Field: "title", Message: "title is required"}
	}

	if s.payment != nil {
		if err := s.payment.Verify(ctx, req.CheckoutSessionID); err != nil {
			return nil, errors.WrapError(err, "checkout verification failed")
		}
	}

	if req.SourceURL != "" {
		existing, err := s.storage.FindEpisodeBySourceURL(ctx, req.SourceURL)
		if err == nil && existing != nil && existing.ShowID == req.ShowID {
			s.deps.Logger.Info("Episode already exists for source, skipping synthesis", map[string]interface{}{
				"source_url": req.SourceURL,
				"episode_id": existing.ID,
			})
			return existing, nil
		}
	}

	audio, err := s.synthesizeSegments(ctx, segments)
	if err != nil {
		return nil, err
	}

	episodeID := uuid.New().String()
	key := fmt.Sprintf("episodes/%s.mp3", episodeID)

	audioURL, err := s.blobs.Put(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return nil, errors.WrapError(err, "failed to store episode audio")
	}

	ep, err := domain.NewEpisode(req.ShowID, req.Title, audioURL)
	if err != nil {
		return nil, &errors.ValidationError{Field: "episode", Message: err.Error()}
	}

	ep.ID = episodeID
	ep.Description = s.showNotes(req.DescriptionHTML)
	ep.SourceURL = req.SourceURL
	ep.ImageURL = req.ImageURL
	ep.FileSize = int64(len(audio))
	ep.Duration = len(audio) / mp3BytesPerSecond

	if err := s.storage.SaveEpisode(ctx, ep); err != nil {
		return nil, errors.WrapError(err, "failed to save episode")
	}

	s.deps.Logger.Info("Episode generated", map[string]interface{}{
		"episode_id": ep.ID,
		"show_id":    ep.ShowID,
		"segments":   len(segments),
		"bytes":      ep.FileSize,
		"duration":   ep.Duration,
	})

	return ep, nil
}

// List returns all episodes, newest first
func (s *Service) List(ctx context.Context) ([]domain.Episode, error) {
	episodes, err := s.storage.ListEpisodes(ctx)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list episodes")
	}
	return episodes, nil
}

// GetShow retrieves a show by ID
func (s *Service) GetShow(ctx context.Context, showID string) (*domain.Show, error) {
	if showID == "" {
		return nil, &errors.ValidationError{Field: "showId", Message: "show ID is required"}
	}

	show, err := s.storage.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, &errors.NotFoundError{Resource: "show", ID: showID}
	}
	return show, nil
}

// ListByShow returns a show's episodes, newest first
func (s *Service) ListByShow(ctx context.Context, showID string) ([]domain.Episode, error) {
	if showID == "" {
		return nil, &errors.ValidationError{Field: "showId", Message: "show ID is required"}
	}

	episodes, err := s.storage.ListEpisodesByShow(ctx, showID)
	if err != nil {
		return nil, errors.WrapError(err, "failed to list episodes")
	}
	return episodes, nil
}

// CreateShow sets up a show for a source blog
func (s *Service) CreateShow(ctx context.Context, title, description, author, imageURL string) (*domain.Show, error) {
	show, err := domain.NewShow(title, description, author)
	if err != nil {
		return nil, &errors.ValidationError{Field: "show", Message: err.Error()}
	}
	show.ImageURL = imageURL

	if err := s.storage.SaveShow(ctx, show); err != nil {
		return nil, errors.WrapError(err, "failed to save show")
	}

	return show, nil
}

// synthesizeSegments renders each segment and concatenates the audio in
// segment order. MP3 frames are self-delimiting, so plain concatenation
// plays back correctly.
func (s *Service) synthesizeSegments(ctx context.Context, segments []domain.Segment) ([]byte, error) {
	var combined bytes.Buffer

	for i, segment := range segments {
		audio, err := s.synth.Synthesize(ctx, segment.Text, segment.VoiceID)
		if err != nil {
			return nil, &errors.ExternalAPIError{
				API:     "speech",
				Message: fmt.Sprintf("segment %d synthesis failed: %v", i, err),
			}
		}
		combined.Write(audio)
	}

	return combined.Bytes(), nil
}

// showNotes converts article markup into markdown show notes. Conversion
// failures degrade to the stripped text rather than failing generation.
func (s *Service) showNotes(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}

	notes, err := s.tomd.ConvertString(html)
	if err != nil {
		s.deps.Logger.Debug("Show notes conversion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return html
	}

	return strings.TrimSpace(notes)
}

// confirmedSegments filters the narration plan down to what the user
// approved and assigned a voice
func confirmedSegments(segments []domain.Segment) []domain.Segment {
	var confirmed []domain.Segment
	for _, seg := range segments {
		if seg.Confirmed && seg.VoiceID != "" && strings.TrimSpace(seg.Text) != "" {
			confirmed = append(confirmed, seg)
		}
	}
	return confirmed
}
