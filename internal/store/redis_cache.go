package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on a Redis instance, for deployments where
// multiple API replicas should share computed results.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisCache connects to the Redis instance at addr. Entries expire after
// ttl; a zero ttl keeps them indefinitely.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

// Get returns the cached value for key; a miss and a connection error look
// the same to the caller, which recomputes either way.
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key.
func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}
