// ABOUTME: SourceRegistry interface for persisting configured catalog sources
// ABOUTME: Defines the CRUD contract consumed by the API layer

package interfaces

import (
	"context"

	"opds-client-api/core/domain"
)

// SourceRegistry defines the interface for source persistence.
// Implementations can be in-memory, Redis, SQLite, or any other store.
// The catalog client itself only ever reads sources; creation and
// mutation happen at the API boundary.
type SourceRegistry interface {
	// Create persists a new source. The source ID must be set and
	// unused; creating a duplicate ID is an error.
	Create(ctx context.Context, source *domain.Source) error

	// GetAll returns all persisted sources ordered by ID.
	GetAll(ctx context.Context) ([]domain.Source, error)

	// Get retrieves a source by ID. Returns a NotFoundError from
	// core/errors when the ID is unknown.
	Get(ctx context.Context, id string) (*domain.Source, error)

	// Update replaces an existing source record by its ID.
	Update(ctx context.Context, source *domain.Source) error

	// Delete removes a source by ID. Deleting an unknown ID is not
	// an error.
	Delete(ctx context.Context, id string) error
}
