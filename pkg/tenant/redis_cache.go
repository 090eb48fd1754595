package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache stores validated tenant records in Redis so gate lookups are
// shared across API instances. Records are serialized as JSON; a read or
// decode failure is a miss, never a request failure.
type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache creates a Redis-backed tenant cache. Keys are namespaced
// under the given prefix ("tenant" when empty).
func NewRedisCache(client redis.UniversalClient, prefix string) Cache {
	if prefix == "" {
		prefix = "tenant"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) key(key string) string {
	return c.prefix + ":" + key
}

func (c *redisCache) Get(ctx context.Context, key string) (*Record, bool) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false
	}
	return &rec, true
}

func (c *redisCache) Set(ctx context.Context, key string, rec *Record, ttl time.Duration) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(key), raw, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, c.key(key)).Err()
}

func (c *redisCache) Close() error {
	return nil
}
