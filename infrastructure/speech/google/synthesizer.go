// ABOUTME: Google Cloud Text-to-Speech implementation of the speech synthesizer
// ABOUTME: Chunks long text under the API character limit and concatenates the audio

package google

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"anoncast-api/core/domain"
	"anoncast-api/core/interfaces"
)

// maxChunkSize keeps each synthesis request under the API's input limit
const maxChunkSize = 1000

// Synthesizer implements the SpeechSynthesizer interface on Google Cloud TTS
type Synthesizer struct {
	client       *texttospeech.Client
	logger       interfaces.Logger
	languageCode string
	defaultVoice string
}

// NewSynthesizer creates a synthesizer. Credentials come from the ambient
// Google Cloud environment.
func NewSynthesizer(ctx context.Context, logger interfaces.Logger, languageCode, defaultVoice string) (*Synthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}

	return &Synthesizer{
		client:       client,
		logger:       logger,
		languageCode: languageCode,
		defaultVoice: defaultVoice,
	}, nil
}

// Synthesize renders text as MP3 audio with the given voice
func (s *Synthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = s.defaultVoice
	}

	var audio bytes.Buffer

	for _, chunk := range splitTextIntoChunks(text, maxChunkSize) {
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: chunk},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: languageOf(voiceID, s.languageCode),
				Name:         voiceID,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			},
		}

		resp, err := s.client.SynthesizeSpeech(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("synthesis failed: %w", err)
		}

		audio.Write(resp.AudioContent)
	}

	s.logger.Debug("Synthesized text", map[string]interface{}{
		"voice": voiceID,
		"chars": len(text),
		"bytes": audio.Len(),
	})

	return audio.Bytes(), nil
}

// Voices lists the provider's voices for the configured language
func (s *Synthesizer) Voices(ctx context.Context) ([]domain.Voice, error) {
	resp, err := s.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{
		LanguageCode: s.languageCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}

	voices := make([]domain.Voice, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		voices = append(voices, mapVoice(v))
	}

	return voices, nil
}

// Voice looks up a single voice by name. Returns nil when the provider
// does not offer it.
func (s *Synthesizer) Voice(ctx context.Context, voiceID string) (*domain.Voice, error) {
	resp, err := s.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{
		LanguageCode: languageOf(voiceID, s.languageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}

	for _, v := range resp.Voices {
		if v.Name == voiceID {
			voice := mapVoice(v)
			return &voice, nil
		}
	}

	return nil, nil
}

// Close releases the underlying gRPC connection
func (s *Synthesizer) Close() error {
	return s.client.Close()
}

// mapVoice converts a provider voice into the domain model
func mapVoice(v *texttospeechpb.Voice) domain.Voice {
	gender := strings.ToLower(v.SsmlGender.String())
	if gender == "ssml_voice_gender_unspecified" || gender == "neutral" {
		gender = ""
	}

	accent := ""
	if len(v.LanguageCodes) > 0 {
		accent = v.LanguageCodes[0]
	}

	description := voiceFamily(v.Name) + " voice"
	if gender != "" {
		description = gender + " " + description
	}

	return domain.Voice{
		ID:          v.Name,
		Name:        v.Name,
		Description: description,
		Category:    "premade",
		Accent:      accent,
		Gender:      gender,
	}
}

// voiceFamily extracts the model family from a voice name
// (en-US-Neural2-J -> Neural2)
func voiceFamily(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) >= 3 {
		return parts[2]
	}
	return name
}

// languageOf derives the language code from a voice name
// (en-US-Neural2-J -> en-US), falling back to the configured default
func languageOf(voiceID, fallback string) string {
	parts := strings.Split(voiceID, "-")
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return fallback
}

// splitTextIntoChunks splits text at word boundaries into chunks of up to
// maxSize characters
func splitTextIntoChunks(text string, maxSize int) []string {
	var chunks []string
	words := strings.Fields(text)
	var chunk string

	for _, word := range words {
		if len(chunk)+len(word)+1 > maxSize {
			chunks = append(chunks, chunk)
			chunk = word
		} else {
			if chunk != "" {
				chunk += " "
			}
			chunk += word
		}
	}
	if chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}
