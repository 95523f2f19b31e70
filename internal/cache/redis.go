package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the result cache with a Redis server.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the Redis server at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

// Get returns the value for key, or false when missing or unreachable.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the value without expiry. Scenario fingerprints are
// content-addressed, so stale entries cannot be served.
func (r *RedisCache) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Close releases the client connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
