// ABOUTME: Discover handler for finding OPDS catalog URLs from regular website URLs
// ABOUTME: Checks HTML link elements for advertised catalog endpoints

package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

// CatalogDiscoverer interface defines the autodiscovery probe
type CatalogDiscoverer interface {
	DiscoverCatalog(ctx context.Context, siteURL string) (string, error)
}

// DiscoverHandler handles catalog autodiscovery
type DiscoverHandler struct {
	discoverer CatalogDiscoverer
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(discoverer CatalogDiscoverer) *DiscoverHandler {
	return &DiscoverHandler{
		discoverer: discoverer,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverCatalogs",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover OPDS catalogs from websites",
		Description: "Attempts to discover catalog URLs advertised in the HTML of the provided website URLs",
		Tags:        []string{"Discovery"},
	}, h.DiscoverCatalogs)
}

// DiscoverCatalogsInput defines the input for catalog discovery
type DiscoverCatalogsInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"List of website URLs to discover catalogs from"`
	}
}

// CatalogDiscoveryResult represents a single discovery result
type CatalogDiscoveryResult struct {
	URL        string `json:"url" doc:"Original URL that was checked"`
	Status     string `json:"status" doc:"Discovery status: 'ok' or 'error'"`
	CatalogURL string `json:"catalogUrl,omitempty" doc:"Discovered catalog URL"`
	Error      string `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// DiscoverCatalogsOutput defines the output for catalog discovery
type DiscoverCatalogsOutput struct {
	Body struct {
		Catalogs []CatalogDiscoveryResult `json:"catalogs" doc:"Discovery results for each URL"`
	}
}

// DiscoverCatalogs handles the POST /discover endpoint
func (h *DiscoverHandler) DiscoverCatalogs(ctx context.Context, input *DiscoverCatalogsInput) (*DiscoverCatalogsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	var wg sync.WaitGroup
	results := make([]CatalogDiscoveryResult, len(input.Body.URLs))

	for i, url := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, siteURL string) {
			defer wg.Done()

			catalogURL, err := h.discoverer.DiscoverCatalog(ctx, siteURL)
			if err != nil {
				results[idx] = CatalogDiscoveryResult{
					URL:    siteURL,
					Status: "error",
					Error:  err.Error(),
				}
			} else {
				results[idx] = CatalogDiscoveryResult{
					URL:        siteURL,
					Status:     "ok",
					CatalogURL: catalogURL,
				}
			}
		}(i, url)
	}

	wg.Wait()

	output := &DiscoverCatalogsOutput{}
	output.Body.Catalogs = results
	return output, nil
}
