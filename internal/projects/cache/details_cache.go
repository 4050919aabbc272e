package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vasilika/portfolio-tracker-backend/internal/projects/domain"
)

const (
	detailsKeyPrefix = "portfolio:details:" // Full details view per slug: portfolio:details:{slug}
	projectListKey   = "portfolio:projects" // Cached public project list
)

// DetailsCache stores rendered read views in Redis so public pages do not
// hit Postgres on every request. It caches only the unfiltered views;
// paged/filtered queries always go to the store.
type DetailsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDetailsCache creates a cache with the given entry TTL.
func NewDetailsCache(client *redis.Client, ttl time.Duration) *DetailsCache {
	return &DetailsCache{client: client, ttl: ttl}
}

// GetDetails returns the cached details view for a slug, or (nil, nil)
// on a miss.
func (c *DetailsCache) GetDetails(ctx context.Context, slug string) (*domain.ProjectDetails, error) {
	data, err := c.client.Get(ctx, detailsKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get details: %w", err)
	}

	var d domain.ProjectDetails
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("cache decode details: %w", err)
	}
	return &d, nil
}

// SetDetails stores the details view for a slug.
func (c *DetailsCache) SetDetails(ctx context.Context, slug string, d *domain.ProjectDetails) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("cache encode details: %w", err)
	}
	if err := c.client.Set(ctx, detailsKeyPrefix+slug, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set details: %w", err)
	}
	return nil
}

// GetProjectList returns the cached project list, or (nil, nil) on a miss.
func (c *DetailsCache) GetProjectList(ctx context.Context) ([]domain.Project, error) {
	data, err := c.client.Get(ctx, projectListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get list: %w", err)
	}

	var out []domain.Project
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cache decode list: %w", err)
	}
	return out, nil
}

// SetProjectList stores the public project list.
func (c *DetailsCache) SetProjectList(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache encode list: %w", err)
	}
	if err := c.client.Set(ctx, projectListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set list: %w", err)
	}
	return nil
}

// Invalidate drops the cached views touched by a mutation under the
// given slug. The list key is always dropped since any project mutation
// can change it.
func (c *DetailsCache) Invalidate(ctx context.Context, slug string) error {
	keys := []string{projectListKey}
	if slug != "" {
		keys = append(keys, detailsKeyPrefix+slug)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
