// ABOUTME: SQLite-backed SourceRegistry implementation for persistent source storage
// ABOUTME: Provides a file-based registry that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"opds-client-api/core/domain"
	"opds-client-api/core/errors"
)

// Registry implements the SourceRegistry interface using SQLite
type Registry struct {
	db       *sql.DB
	filePath string
}

// NewRegistry creates a new SQLite registry at the given file path
func NewRegistry(filePath string) (*Registry, error) {
	if filePath == "" {
		filePath = "sources.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	registry := &Registry{
		db:       db,
		filePath: filePath,
	}

	if err := registry.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return registry, nil
}

// initSchema creates the sources table if it doesn't exist
func (r *Registry) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS sources (
			id TEXT PRIMARY KEY,
			base_url TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL DEFAULT ''
		);
	`

	_, err := r.db.Exec(query)
	return err
}

// Create persists a new source
func (r *Registry) Create(ctx context.Context, source *domain.Source) error {
	if source.ID == "" {
		return &errors.ValidationError{Field: "id", Message: "source ID cannot be empty"}
	}

	query := "INSERT INTO sources (id, base_url, username, password) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, source.ID, source.BaseURL, source.Username, source.Password)
	if err != nil {
		return fmt.Errorf("failed to insert source: %w", err)
	}

	return nil
}

// GetAll returns all sources ordered by ID
func (r *Registry) GetAll(ctx context.Context) ([]domain.Source, error) {
	query := "SELECT id, base_url, username, password FROM sources ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	sources := make([]domain.Source, 0)
	for rows.Next() {
		var source domain.Source
		if err := rows.Scan(&source.ID, &source.BaseURL, &source.Username, &source.Password); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// Get retrieves a source by ID
func (r *Registry) Get(ctx context.Context, id string) (*domain.Source, error) {
	var source domain.Source

	query := "SELECT id, base_url, username, password FROM sources WHERE id = ?"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&source.ID, &source.BaseURL, &source.Username, &source.Password)

	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "source", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

// Update replaces an existing source record
func (r *Registry) Update(ctx context.Context, source *domain.Source) error {
	query := "UPDATE sources SET base_url = ?, username = ?, password = ? WHERE id = ?"
	result, err := r.db.ExecContext(ctx, query, source.BaseURL, source.Username, source.Password, source.ID)
	if err != nil {
		return fmt.Errorf("failed to update source: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &errors.NotFoundError{Resource: "source", ID: source.ID}
	}

	return nil
}

// Delete removes a source by ID
func (r *Registry) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *Registry) Close() error {
	return r.db.Close()
}
