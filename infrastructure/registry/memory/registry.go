// ABOUTME: In-memory SourceRegistry implementation backed by go-cache
// ABOUTME: Suitable for development and tests, records do not survive restarts

package memory

import (
	"context"
	"sort"

	gocache "github.com/patrickmn/go-cache"

	"opds-client-api/core/domain"
	"opds-client-api/core/errors"
)

// Registry implements the SourceRegistry interface with an in-memory
// store. Sources never expire.
type Registry struct {
	store *gocache.Cache
}

// NewRegistry creates a new in-memory registry instance
func NewRegistry() *Registry {
	return &Registry{
		store: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

// Create persists a new source
func (r *Registry) Create(ctx context.Context, source *domain.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source.ID == "" {
		return &errors.ValidationError{Field: "id", Message: "source ID cannot be empty"}
	}
	if _, found := r.store.Get(source.ID); found {
		return &errors.ValidationError{Field: "id", Message: "source already exists"}
	}

	r.store.Set(source.ID, *source, gocache.NoExpiration)
	return nil
}

// GetAll returns all sources ordered by ID
func (r *Registry) GetAll(ctx context.Context) ([]domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := r.store.Items()
	sources := make([]domain.Source, 0, len(items))
	for _, item := range items {
		if source, ok := item.Object.(domain.Source); ok {
			sources = append(sources, source)
		}
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].ID < sources[j].ID })
	return sources, nil
}

// Get retrieves a source by ID
func (r *Registry) Get(ctx context.Context, id string) (*domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, found := r.store.Get(id)
	if !found {
		return nil, &errors.NotFoundError{Resource: "source", ID: id}
	}

	source := item.(domain.Source)
	return &source, nil
}

// Update replaces an existing source record
func (r *Registry) Update(ctx context.Context, source *domain.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, found := r.store.Get(source.ID); !found {
		return &errors.NotFoundError{Resource: "source", ID: source.ID}
	}

	r.store.Set(source.ID, *source, gocache.NoExpiration)
	return nil
}

// Delete removes a source by ID
func (r *Registry) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.Delete(id)
	return nil
}
