// ABOUTME: Download handler for the Huma API
// ABOUTME: Proxies acquisition link downloads with source credentials applied

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"opds-client-api/core/domain"
	"opds-client-api/core/interfaces"
)

// DownloadService interface defines the methods needed from the download service
type DownloadService interface {
	Download(ctx context.Context, rawURL string, source *domain.Source) domain.DownloadResult
}

// DownloadHandler handles publication download HTTP requests
type DownloadHandler struct {
	downloadService DownloadService
	registry        interfaces.SourceRegistry
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(downloadService DownloadService, registry interfaces.SourceRegistry) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		registry:        registry,
	}
}

// RegisterRoutes registers download routes
func (h *DownloadHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "downloadPublication",
		Method:      http.MethodGet,
		Path:        "/download",
		Summary:     "Download a publication",
		Description: "Fetches an acquisition link and streams the bytes back with the upstream content type",
		Tags:        []string{"Catalog"},
	}, h.Download)
}

// DownloadInput defines the input for the Download operation
type DownloadInput struct {
	URL      string `query:"url" required:"true" format:"uri" doc:"Acquisition link to download"`
	SourceID string `query:"source_id,omitempty" doc:"Configured source to take credentials from"`
}

// DownloadOutput defines the output for the Download operation
type DownloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Download handles the GET /download endpoint
func (h *DownloadHandler) Download(ctx context.Context, input *DownloadInput) (*DownloadOutput, error) {
	var source *domain.Source
	if input.SourceID != "" {
		found, err := h.registry.Get(ctx, input.SourceID)
		if err != nil {
			return nil, toHumaError(err)
		}
		source = found
	}

	result := h.downloadService.Download(ctx, input.URL, source)
	if !result.Success {
		return nil, huma.Error502BadGateway(result.Error)
	}

	return &DownloadOutput{
		ContentType:        result.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", result.Filename),
		Body:               result.Data,
	}, nil
}
