// ABOUTME: Request DTOs for episode generation and show management endpoints
// ABOUTME: Carries the narration plan and show metadata from clients

package requests

// SegmentRequest is one narration unit in the generation plan
type SegmentRequest struct {
	// Text is the paragraph text to synthesize
	Text string `json:"text" required:"true" doc:"Paragraph text to narrate"`

	// VoiceID is the assigned narration voice
	VoiceID string `json:"voiceId,omitempty" doc:"Voice to narrate this segment with"`

	// Confirmed marks segments approved for synthesis
	Confirmed bool `json:"confirmed,omitempty" doc:"Whether the segment is approved for synthesis"`
}

// GenerateEpisodeRequest represents a request to generate one episode
type GenerateEpisodeRequest struct {
	// ShowID is the owning show
	ShowID string `json:"showId" required:"true" doc:"Show the episode belongs to"`

	// Title is the episode title
	Title string `json:"title" required:"true" doc:"Episode title"`

	// DescriptionHTML is the article markup the show notes derive from
	DescriptionHTML string `json:"descriptionHtml,omitempty" doc:"Article HTML used for show notes"`

	// SourceURL is the article the episode narrates
	SourceURL string `json:"sourceUrl,omitempty" format:"uri" doc:"Source article URL"`

	// ImageURL is the episode artwork
	ImageURL string `json:"imageUrl,omitempty" format:"uri" doc:"Episode artwork URL"`

	// Segments is the narration plan
	Segments []SegmentRequest `json:"segments" required:"true" minItems:"1" doc:"Narration plan"`

	// CheckoutSessionID authorizes generation when payments are enabled
	CheckoutSessionID string `json:"checkoutSessionId,omitempty" doc:"Completed checkout session"`
}

// CreateShowRequest represents a request to create a show
type CreateShowRequest struct {
	// Title is the show title
	Title string `json:"title" required:"true" doc:"Show title"`

	// Description is a brief show description
	Description string `json:"description,omitempty" doc:"Show description"`

	// Author is the show author shown in podcast directories
	Author string `json:"author,omitempty" doc:"Show author"`

	// ImageURL is the show artwork
	ImageURL string `json:"imageUrl,omitempty" format:"uri" doc:"Show artwork URL"`
}
