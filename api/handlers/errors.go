// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts the extraction error taxonomy to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"anoncast-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	// Every strategy ran and produced nothing; the request was fine but
	// the page yielded no content
	if errors.IsNoContent(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	if errors.IsFetch(err) {
		return huma.Error502BadGateway(err.Error())
	}

	if errors.IsRenderUnavailable(err) {
		return huma.Error503ServiceUnavailable(err.Error())
	}

	if errors.IsRenderTimeout(err) {
		return huma.Error504GatewayTimeout(err.Error())
	}

	if errors.IsExternalAPI(err) {
		if apiErr, ok := err.(*errors.ExternalAPIError); ok && apiErr.StatusCode == 429 {
			return huma.Error429TooManyRequests(err.Error())
		}
		return huma.Error502BadGateway(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
