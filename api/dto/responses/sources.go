// ABOUTME: Response DTOs for source management API endpoints
// ABOUTME: Source responses never include the stored password

package responses

// SourceResponse represents a configured catalog source in API responses
type SourceResponse struct {
	ID             string `json:"id" doc:"Unique identifier for the source"`
	BaseURL        string `json:"base_url" doc:"Root catalog URL"`
	Username       string `json:"username,omitempty" doc:"HTTP Basic auth username"`
	HasCredentials bool   `json:"has_credentials" doc:"True when the source has stored credentials"`
}

// SourceListResponse represents the list of configured sources
type SourceListResponse struct {
	Sources []SourceResponse `json:"sources" doc:"Configured sources ordered by ID"`
	Total   int              `json:"total" doc:"Number of configured sources"`
}

// SourceTestResponse is the tagged outcome of validating a catalog URL
type SourceTestResponse struct {
	Valid bool   `json:"valid" doc:"True when the URL serves a parseable catalog"`
	Title string `json:"title,omitempty" doc:"Catalog title, present when valid"`
	Error string `json:"error,omitempty" doc:"Failure description, present when invalid"`
}
