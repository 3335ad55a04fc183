// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"opds-client-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsUpstream(err) {
		if upErr, ok := err.(*errors.UpstreamError); ok {
			switch {
			case upErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("Upstream catalog error", err)
			case upErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by upstream catalog")
			default:
				return huma.Error502BadGateway("Upstream catalog rejected the request", err)
			}
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
