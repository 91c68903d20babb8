// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"

	"opencosts-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
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

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Catalog service timed out", err)
	}

	if fetchErr, ok := errors.AsRemoteFetch(err); ok {
		// Map catalog status codes to our API status codes
		switch {
		case fetchErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Catalog service error", err)
		case fetchErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by catalog service")
		case fetchErr.StatusCode >= 400:
			return huma.Error502BadGateway("Catalog service request error", err)
		case fetchErr.StatusCode == 0:
			return huma.Error503ServiceUnavailable("Catalog service unreachable", err)
		default:
			return huma.Error502BadGateway("Unexpected catalog service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
