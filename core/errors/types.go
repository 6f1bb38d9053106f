// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the extraction error taxonomy for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error, rejected before any I/O
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failed document fetch: network error, non-OK
// status, or the render backend giving up after retries
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("failed to fetch %s: %d %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Message)
}

// RenderUnavailableError means the headless rendering backend cannot be used
// at all: credentials missing or the backend rejected the session outright.
// This is a configuration problem and is never retried.
type RenderUnavailableError struct {
	Message string
}

// Error implements the error interface
func (e *RenderUnavailableError) Error() string {
	return fmt.Sprintf("render backend unavailable: %s", e.Message)
}

// RenderTimeoutError means the browser connection or page navigation
// exceeded its bound. Surfaced distinctly from FetchError so callers can
// suggest "try again" rather than "check the URL".
type RenderTimeoutError struct {
	URL   string
	Stage string // "connect" or "navigate"
}

// Error implements the error interface
func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("render %s timeout for %s", e.Stage, e.URL)
}

// NoContentError means every extraction strategy produced zero usable
// paragraphs. The most common real-world failure (paywalls, login walls,
// exotic JS frameworks), reported with a human-actionable message.
type NoContentError struct {
	URL string
}

// Error implements the error interface
func (e *NoContentError) Error() string {
	return fmt.Sprintf("could not extract content from %s: the page may be dynamically loaded or require authentication", e.URL)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsRenderUnavailable checks if an error is a RenderUnavailableError
func IsRenderUnavailable(err error) bool {
	var unavailErr *RenderUnavailableError
	return errors.As(err, &unavailErr)
}

// IsRenderTimeout checks if an error is a RenderTimeoutError
func IsRenderTimeout(err error) bool {
	var timeoutErr *RenderTimeoutError
	return errors.As(err, &timeoutErr)
}

// IsNoContent checks if an error is a NoContentError
func IsNoContent(err error) bool {
	var noContentErr *NoContentError
	return errors.As(err, &noContentErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
