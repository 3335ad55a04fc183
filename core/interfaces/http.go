// ABOUTME: HTTP client abstraction used for all outbound catalog requests
// ABOUTME: Allows mocking in tests and swapping client implementations

package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// Every outbound request of the catalog client goes through this
// interface; headers carry the per-request Accept and Authorization
// values the catalog protocol requires.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL with the
	// given additional headers. A non-2xx status is not an error at
	// this layer; callers inspect the Response.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Status returns the full status line text, e.g. "404 Not Found".
	Status() string

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
