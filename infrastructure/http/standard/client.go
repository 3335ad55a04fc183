// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Sends the fixed client identifier and per-request headers on every GET

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"opds-client-api/core/interfaces"
)

const userAgent = "OPDSClient/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library.
// It performs no retries: a failed request surfaces immediately and
// retry policy stays with the caller.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request with the given additional headers.
// A non-2xx status is returned as a normal response, not an error.
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	status     string
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Status returns the full status line, e.g. "404 Not Found"
func (r *httpResponse) Status() string {
	return r.status
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
