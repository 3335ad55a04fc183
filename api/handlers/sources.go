// ABOUTME: Source management handlers for the Huma API
// ABOUTME: Provides CRUD endpoints for catalog sources and pre-save validation

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"opds-client-api/api/dto/mappers"
	"opds-client-api/api/dto/responses"
	"opds-client-api/core/domain"
	"opds-client-api/core/interfaces"
)

// SourceValidator interface defines the catalog probe used before saving
type SourceValidator interface {
	TestSource(ctx context.Context, catalogURL, username, password string) domain.SourceTestResult
}

// SourcesHandler handles source management HTTP requests
type SourcesHandler struct {
	registry  interfaces.SourceRegistry
	validator SourceValidator
}

// NewSourcesHandler creates a new sources handler
func NewSourcesHandler(registry interfaces.SourceRegistry, validator SourceValidator) *SourcesHandler {
	return &SourcesHandler{
		registry:  registry,
		validator: validator,
	}
}

// RegisterRoutes registers all source management routes
func (h *SourcesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/sources",
		Summary:     "List configured sources",
		Tags:        []string{"Sources"},
	}, h.ListSources)

	huma.Register(api, huma.Operation{
		OperationID: "createSource",
		Method:      http.MethodPost,
		Path:        "/sources",
		Summary:     "Add a catalog source",
		Tags:        []string{"Sources"},
	}, h.CreateSource)

	huma.Register(api, huma.Operation{
		OperationID: "getSource",
		Method:      http.MethodGet,
		Path:        "/sources/{id}",
		Summary:     "Get a catalog source",
		Tags:        []string{"Sources"},
	}, h.GetSource)

	huma.Register(api, huma.Operation{
		OperationID: "updateSource",
		Method:      http.MethodPut,
		Path:        "/sources/{id}",
		Summary:     "Update a catalog source",
		Tags:        []string{"Sources"},
	}, h.UpdateSource)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteSource",
		Method:        http.MethodDelete,
		Path:          "/sources/{id}",
		Summary:       "Remove a catalog source",
		Tags:          []string{"Sources"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteSource)

	huma.Register(api, huma.Operation{
		OperationID: "validateSource",
		Method:      http.MethodPost,
		Path:        "/sources/validate",
		Summary:     "Validate a catalog URL",
		Description: "Probes the URL with the given credentials and reports whether it serves a parseable catalog",
		Tags:        []string{"Sources"},
	}, h.ValidateSource)
}

// ListSourcesOutput defines the output for the ListSources operation
type ListSourcesOutput struct {
	Body responses.SourceListResponse
}

// ListSources handles the GET /sources endpoint
func (h *SourcesHandler) ListSources(ctx context.Context, _ *struct{}) (*ListSourcesOutput, error) {
	sources, err := h.registry.GetAll(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListSourcesOutput{
		Body: mappers.ToSourceListResponse(sources),
	}, nil
}

// CreateSourceInput defines the input for the CreateSource operation
type CreateSourceInput struct {
	Body struct {
		BaseURL  string `json:"base_url" required:"true" format:"uri" doc:"Root catalog URL"`
		Username string `json:"username,omitempty" doc:"HTTP Basic auth username"`
		Password string `json:"password,omitempty" doc:"HTTP Basic auth password"`
	}
}

// CreateSourceOutput defines the output for the CreateSource operation
type CreateSourceOutput struct {
	Body responses.SourceResponse
}

// CreateSource handles the POST /sources endpoint
func (h *SourcesHandler) CreateSource(ctx context.Context, input *CreateSourceInput) (*CreateSourceOutput, error) {
	source := &domain.Source{
		ID:       uuid.New().String(),
		BaseURL:  input.Body.BaseURL,
		Username: input.Body.Username,
		Password: input.Body.Password,
	}

	if err := source.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if err := h.registry.Create(ctx, source); err != nil {
		return nil, toHumaError(err)
	}

	return &CreateSourceOutput{
		Body: *mappers.ToSourceResponse(source),
	}, nil
}

// GetSourceInput defines the input for the GetSource operation
type GetSourceInput struct {
	ID string `path:"id" doc:"Source identifier"`
}

// GetSourceOutput defines the output for the GetSource operation
type GetSourceOutput struct {
	Body responses.SourceResponse
}

// GetSource handles the GET /sources/{id} endpoint
func (h *SourcesHandler) GetSource(ctx context.Context, input *GetSourceInput) (*GetSourceOutput, error) {
	source, err := h.registry.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetSourceOutput{
		Body: *mappers.ToSourceResponse(source),
	}, nil
}

// UpdateSourceInput defines the input for the UpdateSource operation
type UpdateSourceInput struct {
	ID   string `path:"id" doc:"Source identifier"`
	Body struct {
		BaseURL  string `json:"base_url" required:"true" format:"uri" doc:"Root catalog URL"`
		Username string `json:"username,omitempty" doc:"HTTP Basic auth username"`
		Password string `json:"password,omitempty" doc:"HTTP Basic auth password"`
	}
}

// UpdateSourceOutput defines the output for the UpdateSource operation
type UpdateSourceOutput struct {
	Body responses.SourceResponse
}

// UpdateSource handles the PUT /sources/{id} endpoint
func (h *SourcesHandler) UpdateSource(ctx context.Context, input *UpdateSourceInput) (*UpdateSourceOutput, error) {
	source := &domain.Source{
		ID:       input.ID,
		BaseURL:  input.Body.BaseURL,
		Username: input.Body.Username,
		Password: input.Body.Password,
	}

	if err := source.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if err := h.registry.Update(ctx, source); err != nil {
		return nil, toHumaError(err)
	}

	return &UpdateSourceOutput{
		Body: *mappers.ToSourceResponse(source),
	}, nil
}

// DeleteSourceInput defines the input for the DeleteSource operation
type DeleteSourceInput struct {
	ID string `path:"id" doc:"Source identifier"`
}

// DeleteSource handles the DELETE /sources/{id} endpoint
func (h *SourcesHandler) DeleteSource(ctx context.Context, input *DeleteSourceInput) (*struct{}, error) {
	if err := h.registry.Delete(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &struct{}{}, nil
}

// ValidateSourceInput defines the input for the ValidateSource operation
type ValidateSourceInput struct {
	Body struct {
		URL      string `json:"url" required:"true" format:"uri" doc:"Catalog URL to probe"`
		Username string `json:"username,omitempty" doc:"HTTP Basic auth username"`
		Password string `json:"password,omitempty" doc:"HTTP Basic auth password"`
	}
}

// ValidateSourceOutput defines the output for the ValidateSource operation
type ValidateSourceOutput struct {
	Body responses.SourceTestResponse
}

// ValidateSource handles the POST /sources/validate endpoint
func (h *SourcesHandler) ValidateSource(ctx context.Context, input *ValidateSourceInput) (*ValidateSourceOutput, error) {
	result := h.validator.TestSource(ctx, input.Body.URL, input.Body.Username, input.Body.Password)

	return &ValidateSourceOutput{
		Body: mappers.ToSourceTestResponse(result),
	}, nil
}
