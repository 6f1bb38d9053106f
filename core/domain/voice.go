// ABOUTME: Voice domain model for synthetic narration voices
// ABOUTME: Defines the voice catalog entry and a narration segment with its voice assignment

package domain

// Voice represents a synthetic narration voice offered to the user
type Voice struct {
	// ID is the provider's voice identifier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Description is a short characterization ("warm", "narrative", ...)
	Description string `json:"description"`

	// PreviewURL points to a short audio sample
	PreviewURL string `json:"previewUrl"`

	// Category distinguishes premade from cloned/shared voices
	Category string `json:"category"`

	// Accent and Gender are optional labels
	Accent string `json:"accent,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// Segment is one narration unit: a paragraph with a voice assigned
type Segment struct {
	// Text is the paragraph text to synthesize
	Text string `json:"text"`

	// VoiceID is the assigned voice
	VoiceID string `json:"voiceId"`

	// Confirmed marks segments the user approved for synthesis
	Confirmed bool `json:"confirmed"`
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
