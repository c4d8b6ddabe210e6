package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin read-through JSON cache over Redis with explicit
// invalidation. All methods are no-ops when the client is nil so the API
// keeps working in environments without Redis.
type Cache struct {
	client *redis.Client
}

// New creates a cache backed by the given Redis client (may be nil)
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON reads key into dest. Returns false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.client == nil {
		return false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Treat a corrupt entry as a miss and drop it
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON stores v under key with the given TTL
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Invalidate removes the given keys
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// InvalidatePrefix removes every key matching prefix* so dependent reads
// refetch fresh state
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
