// Package cache provides a small Redis-backed cache for list endpoint
// responses. Caching is advisory: every failure degrades to a miss and the
// caller falls through to the database.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached list payload stays fresh.
const DefaultTTL = 2 * time.Minute

// ListKey builds the cache key for a resource family's list endpoint.
func ListKey(resource string) string {
	return "list:" + resource
}

// ListCache caches serialized list responses in Redis with a fixed TTL.
// A nil ListCache is valid and disables caching entirely.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a ListCache backed by the given Redis client. If ttl is zero,
// DefaultTTL is used. Returns nil (caching disabled) if client is nil.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ListCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ListCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "list_cache")),
	}
}

// Get returns the cached payload for key and whether it was present.
func (c *ListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload for key with the configured TTL.
func (c *ListCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// Invalidate removes the given keys. Writes to a resource family call this
// so stale lists never outlive a mutation by more than the request.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
