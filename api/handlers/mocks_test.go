package handlers

import (
	"context"

	"opds-client-api/core/domain"
	"opds-client-api/core/errors"
)

// mockCatalogService is a mock implementation of the catalog service
type mockCatalogService struct {
	fetchFeedFunc func(ctx context.Context, feedURL string, source *domain.Source) domain.FetchResult
}

func (m *mockCatalogService) FetchFeed(ctx context.Context, feedURL string, source *domain.Source) domain.FetchResult {
	if m.fetchFeedFunc != nil {
		return m.fetchFeedFunc(ctx, feedURL, source)
	}
	return domain.FetchResult{Success: true, Feed: &domain.Feed{}}
}

// mockDownloadService is a mock implementation of the download service
type mockDownloadService struct {
	downloadFunc func(ctx context.Context, rawURL string, source *domain.Source) domain.DownloadResult
}

func (m *mockDownloadService) Download(ctx context.Context, rawURL string, source *domain.Source) domain.DownloadResult {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, rawURL, source)
	}
	return domain.DownloadResult{Success: true}
}

// mockValidator is a mock implementation of the source validator
type mockValidator struct {
	testSourceFunc func(ctx context.Context, catalogURL, username, password string) domain.SourceTestResult
}

func (m *mockValidator) TestSource(ctx context.Context, catalogURL, username, password string) domain.SourceTestResult {
	if m.testSourceFunc != nil {
		return m.testSourceFunc(ctx, catalogURL, username, password)
	}
	return domain.SourceTestResult{Valid: true}
}

// mockDiscoverer is a mock implementation of the catalog discoverer
type mockDiscoverer struct {
	discoverFunc func(ctx context.Context, siteURL string) (string, error)
}

func (m *mockDiscoverer) DiscoverCatalog(ctx context.Context, siteURL string) (string, error) {
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, siteURL)
	}
	return "", nil
}

// mockRegistry is an in-memory mock of the source registry
type mockRegistry struct {
	sources map[string]domain.Source
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{sources: make(map[string]domain.Source)}
}

func (m *mockRegistry) Create(ctx context.Context, source *domain.Source) error {
	if _, exists := m.sources[source.ID]; exists {
		return &errors.ValidationError{Field: "id", Message: "source already exists"}
	}
	m.sources[source.ID] = *source
	return nil
}

func (m *mockRegistry) GetAll(ctx context.Context) ([]domain.Source, error) {
	out := make([]domain.Source, 0, len(m.sources))
	for _, s := range m.sources {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockRegistry) Get(ctx context.Context, id string) (*domain.Source, error) {
	s, ok := m.sources[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "source", ID: id}
	}
	return &s, nil
}

func (m *mockRegistry) Update(ctx context.Context, source *domain.Source) error {
	if _, ok := m.sources[source.ID]; !ok {
		return &errors.NotFoundError{Resource: "source", ID: source.ID}
	}
	m.sources[source.ID] = *source
	return nil
}

func (m *mockRegistry) Delete(ctx context.Context, id string) error {
	delete(m.sources, id)
	return nil
}
