// ABOUTME: Speech synthesis collaborator contract
// ABOUTME: Turns paragraph text plus a voice identifier into audio bytes

package interfaces

import (
	"context"

	"anoncast-api/core/domain"
)

// SpeechSynthesizer converts text to audio. Synthesis cost scales with
// character count, so callers must only pass cleaned paragraph text.
type SpeechSynthesizer interface {
	// Synthesize renders text with the given voice and returns audio bytes
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)

	// Voices returns the curated catalog of narration voices
	Voices(ctx context.Context) ([]domain.Voice, error)

	// Voice looks up a single voice by ID
	Voice(ctx context.Context, voiceID string) (*domain.Voice, error)
}
