package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"opds-client-api/core/domain"
	"opds-client-api/core/errors"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewRegistry(filepath.Join(t.TempDir(), "sources.db"))
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	t.Cleanup(func() { registry.Close() })

	return registry
}

func TestRegistry_CreateAndGet(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	source := &domain.Source{
		ID:       "a",
		BaseURL:  "https://lib.example/opds",
		Username: "reader",
		Password: "secret",
	}
	if err := registry.Create(ctx, source); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := registry.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.BaseURL != source.BaseURL || got.Username != source.Username || got.Password != source.Password {
		t.Errorf("Get = %+v, want %+v", got, source)
	}
}

func TestRegistry_Create_Duplicate(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	source := &domain.Source{ID: "a", BaseURL: "https://lib.example"}
	registry.Create(ctx, source)

	if err := registry.Create(ctx, source); err == nil {
		t.Error("duplicate Create should error on primary key conflict")
	}
}

func TestRegistry_Get_NotFound(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Get(context.Background(), "missing")

	if !errors.IsNotFound(err) {
		t.Errorf("Get of unknown ID should return not-found error, got %v", err)
	}
}

func TestRegistry_GetAll_Ordered(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	registry.Create(ctx, &domain.Source{ID: "b", BaseURL: "https://b.example"})
	registry.Create(ctx, &domain.Source{ID: "a", BaseURL: "https://a.example"})

	sources, err := registry.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("GetAll returned %d sources, want 2", len(sources))
	}
	if sources[0].ID != "a" || sources[1].ID != "b" {
		t.Errorf("GetAll not ordered by ID: %s, %s", sources[0].ID, sources[1].ID)
	}
}

func TestRegistry_GetAll_Empty(t *testing.T) {
	registry := newTestRegistry(t)

	sources, err := registry.GetAll(context.Background())

	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("GetAll of empty registry returned %d sources", len(sources))
	}
}

func TestRegistry_Update(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	registry.Create(ctx, &domain.Source{ID: "a", BaseURL: "https://lib.example"})

	err := registry.Update(ctx, &domain.Source{ID: "a", BaseURL: "https://other.example", Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := registry.Get(ctx, "a")
	if got.BaseURL != "https://other.example" || got.Username != "u" {
		t.Errorf("Update did not persist: %+v", got)
	}
}

func TestRegistry_Update_NotFound(t *testing.T) {
	registry := newTestRegistry(t)

	err := registry.Update(context.Background(), &domain.Source{ID: "missing", BaseURL: "https://x.example"})

	if !errors.IsNotFound(err) {
		t.Errorf("Update of unknown ID should return not-found error, got %v", err)
	}
}

func TestRegistry_Delete(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	registry.Create(ctx, &domain.Source{ID: "a", BaseURL: "https://lib.example"})
	if err := registry.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := registry.Get(ctx, "a"); !errors.IsNotFound(err) {
		t.Error("source should be gone after Delete")
	}
}

func TestRegistry_Delete_UnknownIsNoError(t *testing.T) {
	registry := newTestRegistry(t)

	if err := registry.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of unknown ID should not error, got %v", err)
	}
}

func TestRegistry_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.db")
	ctx := context.Background()

	first, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	first.Create(ctx, &domain.Source{ID: "a", BaseURL: "https://lib.example"})
	first.Close()

	second, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("NewRegistry (reopen) returned error: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if got.BaseURL != "https://lib.example" {
		t.Errorf("BaseURL = %q after reopen", got.BaseURL)
	}
}
