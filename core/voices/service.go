// ABOUTME: Service layer implementation for voice catalog operations
// ABOUTME: Curates the provider catalog into a small, ordered narration lineup

package voices

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"anoncast-api/core/domain"
	"anoncast-api/core/errors"
	"anoncast-api/core/interfaces"
)

// CatalogPolicy controls how the provider's full voice list is reduced to
// the lineup offered for narration. The preferred list fixes the display
// order; the exclusion list removes voices that tested poorly on long-form
// article reads.
type CatalogPolicy struct {
	// PreferredIDs is the desired lineup, in display order
	PreferredIDs []string

	// ExcludedIDs is never offered, even as backfill
	ExcludedIDs []string

	// Limit caps the lineup size
	Limit int

	// BackfillCategory is the provider category drawn from when fewer
	// than Limit preferred voices are available
	BackfillCategory string

	// CacheTTL is how long the curated catalog is cached
	CacheTTL time.Duration
}

// DefaultCatalogPolicy returns the tuned lineup policy
func DefaultCatalogPolicy() CatalogPolicy {
	return CatalogPolicy{
		PreferredIDs: []string{
			"en-US-Neural2-J",
			"en-US-Neural2-F",
			"en-US-Neural2-D",
			"en-GB-Neural2-A",
			"en-US-Neural2-I",
			"en-AU-Neural2-B",
			"en-US-Neural2-C",
			"en-GB-Neural2-D",
		},
		ExcludedIDs: []string{
			"en-US-Standard-A",
			"en-US-Standard-B",
			"en-US-Standard-C",
			"en-US-Standard-D",
			"en-US-Standard-E",
		},
		Limit:            6,
		BackfillCategory: "premade",
		CacheTTL:         6 * time.Hour,
	}
}

// Service handles voice catalog operations
type Service struct {
	deps   interfaces.Dependencies
	synth  interfaces.SpeechSynthesizer
	policy CatalogPolicy
}

// NewService creates a voice catalog service
func NewService(deps interfaces.Dependencies, synth interfaces.SpeechSynthesizer, policy CatalogPolicy) *Service {
	return &Service{
		deps:   deps,
		synth:  synth,
		policy: policy,
	}
}

// List returns the curated voice lineup
func (s *Service) List(ctx context.Context) ([]domain.Voice, error) {
	const cacheKey = "voices:catalog"

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []domain.Voice
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	available, err := s.synth.Voices(ctx)
	if err != nil {
		return nil, &errors.ExternalAPIError{
			API:     "speech",
			Message: fmt.Sprintf("failed to fetch voices: %v", err),
		}
	}

	lineup := s.curate(available)

	s.deps.Logger.Debug("Curated voice catalog", map[string]interface{}{
		"available": len(available),
		"offered":   len(lineup),
	})

	if s.deps.Cache != nil {
		if data, err := json.Marshal(lineup); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.policy.CacheTTL)
		}
	}

	return lineup, nil
}

// Get looks up one voice by ID
func (s *Service) Get(ctx context.Context, voiceID string) (*domain.Voice, error) {
	if voiceID == "" {
		return nil, &errors.ValidationError{Field: "voiceId", Message: "voice ID is required"}
	}

	voice, err := s.synth.Voice(ctx, voiceID)
	if err != nil {
		return nil, &errors.ExternalAPIError{
			API:     "speech",
			Message: fmt.Sprintf("failed to fetch voice: %v", err),
		}
	}
	if voice == nil {
		return nil, &errors.NotFoundError{Resource: "voice", ID: voiceID}
	}

	return voice, nil
}

// curate filters and orders the provider catalog: preferred voices in
// their configured order first, then backfill from the configured
// category, capped at the limit.
func (s *Service) curate(available []domain.Voice) []domain.Voice {
	byID := make(map[string]domain.Voice, len(available))
	for _, v := range available {
		byID[v.ID] = v
	}

	excluded := make(map[string]bool, len(s.policy.ExcludedIDs))
	for _, id := range s.policy.ExcludedIDs {
		excluded[id] = true
	}

	preferred := make(map[string]bool, len(s.policy.PreferredIDs))
	lineup := make([]domain.Voice, 0, s.policy.Limit)

	for _, id := range s.policy.PreferredIDs {
		preferred[id] = true
		if excluded[id] {
			continue
		}
		if v, ok := byID[id]; ok && len(lineup) < s.policy.Limit {
			lineup = append(lineup, v)
		}
	}

	if len(lineup) < s.policy.Limit {
		for _, v := range available {
			if len(lineup) >= s.policy.Limit {
				break
			}
			if preferred[v.ID] || excluded[v.ID] {
				continue
			}
			if s.policy.BackfillCategory != "" && v.Category != s.policy.BackfillCategory {
				continue
			}
			lineup = append(lineup, v)
		}
	}

	return lineup
}
