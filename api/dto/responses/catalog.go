// ABOUTME: Response DTOs for catalog-related API endpoints
// ABOUTME: Provides structured feed responses with classified links and pagination

package responses

// LinkResponse represents a catalog link in API responses
type LinkResponse struct {
	Href  string `json:"href" doc:"Absolute link target"`
	Type  string `json:"type,omitempty" doc:"Advertised MIME type"`
	Rel   string `json:"rel,omitempty" doc:"Link relation"`
	Title string `json:"title,omitempty" doc:"Human-readable label"`
}

// EntryResponse represents a catalog entry in API responses
type EntryResponse struct {
	ID               string         `json:"id" doc:"Entry identifier from the document"`
	Title            string         `json:"title" doc:"Entry title"`
	Author           string         `json:"author,omitempty" doc:"First author name"`
	Summary          string         `json:"summary,omitempty" doc:"Entry summary"`
	Updated          string         `json:"updated,omitempty" doc:"Raw updated timestamp text"`
	CoverURL         string         `json:"cover_url,omitempty" doc:"Cover image URL"`
	Categories       []string       `json:"categories,omitempty" doc:"Category labels in document order"`
	Links            []LinkResponse `json:"links" doc:"All entry links in document order"`
	AcquisitionLinks []LinkResponse `json:"acquisition_links" doc:"Links that download the publication"`
	SubsectionLinks  []LinkResponse `json:"subsection_links" doc:"Links that lead to sub-catalogs"`
	IsNavigation     bool           `json:"is_navigation" doc:"True when the entry is a sub-catalog rather than a publication"`
}

// NavigationResponse holds the feed-level navigation links
type NavigationResponse struct {
	Self     *LinkResponse `json:"self,omitempty" doc:"This feed"`
	Start    *LinkResponse `json:"start,omitempty" doc:"Catalog root"`
	Up       *LinkResponse `json:"up,omitempty" doc:"Parent feed"`
	Next     *LinkResponse `json:"next,omitempty" doc:"Next page"`
	Previous *LinkResponse `json:"previous,omitempty" doc:"Previous page"`
	Search   *LinkResponse `json:"search,omitempty" doc:"Search endpoint"`
}

// FeedResponse represents a parsed catalog page in API responses
type FeedResponse struct {
	ID         string             `json:"id" doc:"Feed identifier"`
	Title      string             `json:"title" doc:"Feed title"`
	Updated    string             `json:"updated,omitempty" doc:"Raw feed-level updated timestamp text"`
	Entries    []EntryResponse    `json:"entries" doc:"Catalog entries in document order"`
	Links      []LinkResponse     `json:"links" doc:"Feed-level links in document order"`
	Navigation NavigationResponse `json:"navigation" doc:"Well-known navigation links"`

	TotalResults *int `json:"total_results,omitempty" doc:"OpenSearch total result count"`
	StartIndex   *int `json:"start_index,omitempty" doc:"OpenSearch start index"`
	ItemsPerPage *int `json:"items_per_page,omitempty" doc:"OpenSearch page size"`
}

// FetchCatalogResponse is the tagged outcome of a catalog fetch
type FetchCatalogResponse struct {
	Success bool          `json:"success" doc:"True when the feed was fetched and parsed"`
	Feed    *FeedResponse `json:"feed,omitempty" doc:"Parsed feed, present on success"`
	Error   string        `json:"error,omitempty" doc:"Failure description, present on failure"`
}
