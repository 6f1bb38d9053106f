package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "episode", ID: "abc-123"}

	expected := "episode not found: abc-123"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "invalid URL format"}

	expected := "validation error on field 'url': invalid URL format"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{URL: "https://example.com", StatusCode: 404, Message: "Not Found"}

	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error() should contain status code, got %v", err.Error())
	}

	noStatus := &FetchError{URL: "https://example.com", Message: "connection refused"}
	if strings.Contains(noStatus.Error(), "0") {
		t.Errorf("Error() should omit zero status code, got %v", noStatus.Error())
	}
}

func TestRenderTimeoutError_Error(t *testing.T) {
	err := &RenderTimeoutError{URL: "https://example.com", Stage: "navigate"}

	if !strings.Contains(err.Error(), "navigate") {
		t.Errorf("Error() should name the stage, got %v", err.Error())
	}
}

func TestNoContentError_Error(t *testing.T) {
	err := &NoContentError{URL: "https://example.com/article"}

	// The message must be human-actionable, not a bare failure
	if !strings.Contains(err.Error(), "dynamically loaded") {
		t.Errorf("Error() should explain likely causes, got %v", err.Error())
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"not found", &NotFoundError{Resource: "show", ID: "1"}, IsNotFound},
		{"validation", &ValidationError{Field: "url", Message: "bad"}, IsValidation},
		{"fetch", &FetchError{URL: "u", Message: "m"}, IsFetch},
		{"render unavailable", &RenderUnavailableError{Message: "no credentials"}, IsRenderUnavailable},
		{"render timeout", &RenderTimeoutError{URL: "u", Stage: "connect"}, IsRenderTimeout},
		{"no content", &NoContentError{URL: "u"}, IsNoContent},
		{"external api", &ExternalAPIError{StatusCode: 500, Message: "m", API: "tts"}, IsExternalAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.checker(tt.err) {
				t.Errorf("checker should match %T directly", tt.err)
			}

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !tt.checker(wrapped) {
				t.Errorf("checker should match wrapped %T", tt.err)
			}

			if tt.checker(errors.New("plain error")) {
				t.Error("checker should not match unrelated errors")
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("base error")
	wrapped := WrapError(base, "while scraping")

	if wrapped == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}

	if WrapError(nil, "anything") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
