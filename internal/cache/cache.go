package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetSavedProject(ctx context.Context, id uuid.UUID) ([]byte, error) {
	logger.Debugf(ctx, "getting entry in cache for saved project #%s...", id)
	return c.get(ctx, getCacheKey(id.String(), false))
}

func (c *Cache) GetEtagSavedProject(ctx context.Context, id uuid.UUID) (string, error) {
	raw, err := c.get(ctx, getCacheKey(id.String(), true))
	if err != nil || raw == nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

// SetSavedProject is best effort: a failed write only costs a later miss.
func (c *Cache) SetSavedProject(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	logger.Debugf(ctx, "creating entry in cache for saved project #%s, valid for %s...", id, ttl)

	if err := c.client.Set(ctx, getCacheKey(id.String(), false), data, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  redis set failed for saved project #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagSavedProject(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(id.String(), true), etag, ttl).Err(); err != nil {
		logger.Warnf(ctx, "⚠️  redis set failed for saved project etag #%s: %v", id, err)
	}
}

func (c *Cache) DeleteSavedProject(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting entry in cache for saved project #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id.String(), false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagSavedProject(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, getCacheKey(id.String(), true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string, etag bool) string {
	if etag {
		return "etag:project:" + id
	}
	return "project:" + id
}
