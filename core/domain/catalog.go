// ABOUTME: Catalog domain models for OPDS feeds, entries and hypermedia links
// ABOUTME: Provides validation logic and the tagged result types returned at the client boundary

package domain

import (
	"errors"
	"net/url"
	"strings"
)

// Source identifies one configured remote catalog and its optional
// Basic-auth credentials. Sources are owned and persisted by the
// SourceRegistry; the catalog client only borrows one per request.
type Source struct {
	// ID is the unique identifier for the source
	ID string `json:"id"`

	// BaseURL is the root catalog URL of the remote
	BaseURL string `json:"base_url"`

	// Username for HTTP Basic auth, empty if the catalog is public
	Username string `json:"username,omitempty"`

	// Password for HTTP Basic auth, plaintext by the time it reaches
	// the client (at-rest protection is the registry's concern)
	Password string `json:"password,omitempty"`
}

// Validate checks if the source has valid required fields
func (s *Source) Validate() error {
	if s.BaseURL == "" {
		return errors.New("source base URL cannot be empty")
	}

	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("source base URL is not valid format")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("source base URL must use http or https")
	}

	return nil
}

// HasCredentials reports whether both username and password are set
func (s *Source) HasCredentials() bool {
	return s.Username != "" && s.Password != ""
}

// Link is one hypermedia link from a catalog document. Href is always
// fully resolved (absolute) by the time a Link leaves the parser.
type Link struct {
	// Href is the absolute link target
	Href string

	// Type is the advertised MIME type, may be empty
	Type string

	// Rel is the link relation, may be empty
	Rel string

	// Title is the optional human-readable label
	Title string
}

// Entry represents one catalog item: a book or a sub-catalog.
type Entry struct {
	// ID is the entry's identifier from the document
	ID string

	// Title is the entry's title
	Title string

	// Author is the first author name, empty if the document has none
	Author string

	// Summary is the entry summary, falling back to content text
	Summary string

	// Updated is the raw updated timestamp text from the document
	Updated string

	// CoverURL is the first cover-candidate link's href, empty if none
	CoverURL string

	// Categories in document order
	Categories []string

	// Links in document order
	Links []Link
}

// Feed is one parsed catalog page. Entries and Links preserve document
// order; pagination fields are nil when the document did not supply them.
type Feed struct {
	// ID is the feed identifier, defaulting to the source URL
	ID string

	// Title is the feed title
	Title string

	// Updated is the raw feed-level updated timestamp text
	Updated string

	// Entries in document order
	Entries []Entry

	// Links are the feed-level links in document order
	Links []Link

	// OpenSearch pagination, nil when absent from the document
	TotalResults *int
	StartIndex   *int
	ItemsPerPage *int
}

// NavigationLinks holds the first feed-level link found for each of the
// well-known pagination/navigation relations. Each is optional.
type NavigationLinks struct {
	Self     *Link
	Start    *Link
	Up       *Link
	Next     *Link
	Previous *Link
	Search   *Link
}

// FetchResult is the tagged outcome of a feed fetch. Exactly one of
// Feed and Error is meaningful, selected by Success.
type FetchResult struct {
	Success bool
	Feed    *Feed
	Error   string
}

// DownloadResult is the tagged outcome of a binary acquisition download.
type DownloadResult struct {
	Success     bool
	Data        []byte
	ContentType string
	Filename    string
	Error       string
}

// SourceTestResult is the tagged outcome of validating a catalog
// configuration before it is persisted.
type SourceTestResult struct {
	Valid bool
	Title string
	Error string
}

// IsValid checks if the entry has the fields required for display
func (e *Entry) IsValid() bool {
	return strings.TrimSpace(e.Title) != ""
}
