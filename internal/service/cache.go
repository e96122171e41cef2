package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "cache:"

	subdomainCacheTTL = 30 * time.Second
	statsCacheTTL     = time.Minute
)

// CacheService is a thin JSON cache over Redis. Misses and transport errors
// both report a miss so callers always fall through to the database.
type CacheService struct {
	redis *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{redis: client}
}

// Get retrieves a value from cache. The bool reports whether it was a hit.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.redis.Get(ctx, cacheKeyPrefix+key).Result()
	if err != nil {
		return false, nil // cache miss, not an error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a value in cache with the given TTL.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, cacheKeyPrefix+key, data, ttl).Err()
}

// Delete removes a cached value.
func (c *CacheService) Delete(ctx context.Context, key string) error {
	return c.redis.Del(ctx, cacheKeyPrefix+key).Err()
}
