package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client    *redis.Client
	cfg       *config.CacheConfig
	namespace string
}

// NewRedisCache stores JSON values under "<namespace>:<key>". An empty namespace
// leaves keys untouched.
func NewRedisCache(client *redis.Client, cfg *config.CacheConfig, namespace string) Cache {
	return &redisCache{
		client:    client,
		cfg:       cfg,
		namespace: namespace,
	}
}

func (r *redisCache) key(k string) string {
	if r.namespace == "" {
		return k
	}

	return Key(r.namespace, k)
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	key = r.key(key)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	key = r.key(key)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil

}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}

	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys %v from redis: %w", full, err)
	}

	return nil

}
