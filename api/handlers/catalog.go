// ABOUTME: Catalog handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for browsing OPDS catalog feeds

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"opds-client-api/api/dto/mappers"
	"opds-client-api/api/dto/responses"
	"opds-client-api/core/domain"
	"opds-client-api/core/interfaces"
)

// CatalogService interface defines the methods needed from the catalog service
type CatalogService interface {
	FetchFeed(ctx context.Context, feedURL string, source *domain.Source) domain.FetchResult
}

// CatalogHandler handles catalog browsing HTTP requests
type CatalogHandler struct {
	catalogService CatalogService
	registry       interfaces.SourceRegistry
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, registry interfaces.SourceRegistry) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		registry:       registry,
	}
}

// RegisterRoutes registers all catalog-related routes
func (h *CatalogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fetchCatalog",
		Method:      http.MethodGet,
		Path:        "/catalog",
		Summary:     "Fetch an OPDS catalog feed",
		Description: "Fetches and parses a catalog page, classifying entry links and navigation",
		Tags:        []string{"Catalog"},
	}, h.FetchCatalog)
}

// FetchCatalogInput defines the input for the FetchCatalog operation
type FetchCatalogInput struct {
	URL      string `query:"url,omitempty" format:"uri" doc:"Feed URL to fetch, defaults to the source's base URL"`
	SourceID string `query:"source_id,omitempty" doc:"Configured source to take credentials from"`
}

// FetchCatalogOutput defines the output for the FetchCatalog operation
type FetchCatalogOutput struct {
	Body responses.FetchCatalogResponse
}

// FetchCatalog handles the GET /catalog endpoint
func (h *CatalogHandler) FetchCatalog(ctx context.Context, input *FetchCatalogInput) (*FetchCatalogOutput, error) {
	if input.URL == "" && input.SourceID == "" {
		return nil, huma.Error400BadRequest("Either url or source_id must be provided")
	}

	var source *domain.Source
	if input.SourceID != "" {
		found, err := h.registry.Get(ctx, input.SourceID)
		if err != nil {
			return nil, toHumaError(err)
		}
		source = found
	}

	feedURL := input.URL
	if feedURL == "" {
		feedURL = source.BaseURL
	}

	result := h.catalogService.FetchFeed(ctx, feedURL, source)

	return &FetchCatalogOutput{
		Body: mappers.ToFetchCatalogResponse(result),
	}, nil
}
