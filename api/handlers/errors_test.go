package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"opds-client-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "source", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "source not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "url", Message: "invalid format"},
			expectedStatus: 400,
			expectedInMsg:  "invalid format",
		},
		{
			name:           "UpstreamError with 500 returns 503",
			input:          &errors.UpstreamError{StatusCode: 500, Status: "500 Internal Server Error", URL: "https://x"},
			expectedStatus: 503,
			expectedInMsg:  "Upstream catalog error",
		},
		{
			name:           "UpstreamError with 429 returns 429",
			input:          &errors.UpstreamError{StatusCode: 429, Status: "429 Too Many Requests", URL: "https://x"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by upstream catalog",
		},
		{
			name:           "UpstreamError with 401 returns 502",
			input:          &errors.UpstreamError{StatusCode: 401, Status: "401 Unauthorized", URL: "https://x"},
			expectedStatus: 502,
			expectedInMsg:  "Upstream catalog rejected the request",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "source", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "source not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
