// ABOUTME: Redis-backed SourceRegistry implementation using RedisJSON documents
// ABOUTME: Stores each source under its own key with a set index for listing

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"

	"opds-client-api/core/domain"
	"opds-client-api/core/errors"
	"opds-client-api/pkg/config"
)

const (
	keyPrefix = "source:"
	indexKey  = "sources"
)

// Registry implements the SourceRegistry interface using Redis with the
// RedisJSON module. Each source is one JSON document; a set keeps the
// known IDs for listing.
type Registry struct {
	client  *goredis.Client
	handler *rejson.Handler
}

// NewRegistry creates a new Redis registry instance
func NewRegistry(cfg config.RedisConfig) (*Registry, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &Registry{
		client:  client,
		handler: handler,
	}, nil
}

// Create persists a new source
func (r *Registry) Create(ctx context.Context, source *domain.Source) error {
	if source.ID == "" {
		return &errors.ValidationError{Field: "id", Message: "source ID cannot be empty"}
	}

	exists, err := r.client.Exists(ctx, keyPrefix+source.ID).Result()
	if err != nil {
		return err
	}
	if exists > 0 {
		return &errors.ValidationError{Field: "id", Message: "source already exists"}
	}

	if _, err := r.handler.JSONSet(keyPrefix+source.ID, ".", source); err != nil {
		return fmt.Errorf("failed to store source: %w", err)
	}

	return r.client.SAdd(ctx, indexKey, source.ID).Err()
}

// GetAll returns all sources ordered by ID
func (r *Registry) GetAll(ctx context.Context) ([]domain.Source, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	sources := make([]domain.Source, 0, len(ids))
	for _, id := range ids {
		source, err := r.get(id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Index entry without a document; skip it.
				continue
			}
			return nil, err
		}
		sources = append(sources, *source)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].ID < sources[j].ID })
	return sources, nil
}

// Get retrieves a source by ID
func (r *Registry) Get(ctx context.Context, id string) (*domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.get(id)
}

func (r *Registry) get(id string) (*domain.Source, error) {
	res, err := r.handler.JSONGet(keyPrefix+id, ".")
	if err != nil {
		if err == goredis.Nil {
			return nil, &errors.NotFoundError{Resource: "source", ID: id}
		}
		return nil, fmt.Errorf("failed to load source: %w", err)
	}

	data, ok := replyBytes(res)
	if !ok {
		return nil, fmt.Errorf("unexpected reply type %T for source %s", res, id)
	}

	var source domain.Source
	if err := json.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("failed to decode source: %w", err)
	}

	return &source, nil
}

// Update replaces an existing source record
func (r *Registry) Update(ctx context.Context, source *domain.Source) error {
	exists, err := r.client.Exists(ctx, keyPrefix+source.ID).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return &errors.NotFoundError{Resource: "source", ID: source.ID}
	}

	if _, err := r.handler.JSONSet(keyPrefix+source.ID, ".", source); err != nil {
		return fmt.Errorf("failed to store source: %w", err)
	}

	return nil
}

// Delete removes a source by ID
func (r *Registry) Delete(ctx context.Context, id string) error {
	if _, err := r.handler.JSONDel(keyPrefix+id, "."); err != nil && err != goredis.Nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}

	return r.client.SRem(ctx, indexKey, id).Err()
}

// Close closes the Redis connection
func (r *Registry) Close() error {
	return r.client.Close()
}

// replyBytes normalizes the JSONGet reply, which arrives as bytes or a
// string depending on the underlying client.
func replyBytes(res interface{}) ([]byte, bool) {
	switch v := res.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
