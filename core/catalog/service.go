// ABOUTME: Catalog service orchestrating authenticated feed fetches and parsing
// ABOUTME: Returns tagged FetchResult values, never raised errors, across the client boundary

package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"

	"opds-client-api/core/domain"
	coreerrors "opds-client-api/core/errors"
	"opds-client-api/core/interfaces"
)

// AcceptFeed is the Accept header sent with every feed fetch.
const AcceptFeed = "application/atom+xml, application/xml, text/xml"

// Service fetches and parses remote catalog feeds. Every call is an
// independent request/response with no shared mutable state, so calls
// may run concurrently without coordination. There is no cache and no
// internal retry; a failed fetch surfaces immediately.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new catalog service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// FetchFeed performs an authenticated GET of feedURL, using the
// source's credentials if a source is given, and parses the response
// into a Feed. All failure modes (bad URL, transport error, non-2xx
// status, unparseable document) come back as a failure result.
func (s *Service) FetchFeed(ctx context.Context, feedURL string, source *domain.Source) domain.FetchResult {
	body, err := s.fetchRaw(ctx, feedURL, source, map[string]string{"Accept": AcceptFeed})
	if err != nil {
		s.logFailure("feed fetch failed", feedURL, err)
		return domain.FetchResult{Error: err.Error()}
	}

	feed, err := ParseFeed(body, feedURL)
	if err != nil {
		s.logFailure("feed parse failed", feedURL, err)
		return domain.FetchResult{Error: err.Error()}
	}

	return domain.FetchResult{Success: true, Feed: feed}
}

// TestSource validates a catalog configuration by fetching its root
// feed. Nothing is persisted; the caller decides what to do with a
// valid configuration.
func (s *Service) TestSource(ctx context.Context, catalogURL, username, password string) domain.SourceTestResult {
	source := &domain.Source{
		BaseURL:  catalogURL,
		Username: username,
		Password: password,
	}

	result := s.FetchFeed(ctx, catalogURL, source)
	if !result.Success {
		return domain.SourceTestResult{Error: result.Error}
	}

	return domain.SourceTestResult{Valid: true, Title: result.Feed.Title}
}

// fetchRaw performs the shared authenticated GET and returns the raw
// body. Non-2xx statuses become UpstreamError values carrying the
// status line.
func (s *Service) fetchRaw(ctx context.Context, rawURL string, source *domain.Source, headers map[string]string) ([]byte, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	if headers == nil {
		headers = map[string]string{}
	}
	if source != nil && source.HasCredentials() {
		headers["Authorization"] = BasicAuthHeader(source.Username, source.Password)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, rawURL, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	return readResponse(resp, rawURL)
}

// readResponse turns a non-2xx status into an UpstreamError and
// otherwise buffers the full body.
func readResponse(resp interfaces.Response, rawURL string) ([]byte, error) {
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.UpstreamError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			URL:        rawURL,
		}
	}

	return io.ReadAll(resp.Body())
}

// logFailure logs a failed operation when a logger is configured.
func (s *Service) logFailure(msg, url string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"url":   url,
		"error": err.Error(),
	})
}

// BasicAuthHeader builds an HTTP Basic Authorization header value.
func BasicAuthHeader(username, password string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + credentials
}

// validateURL rejects empty or structurally invalid request URLs
// before any network I/O happens.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL format: %s", rawURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}

	return nil
}
