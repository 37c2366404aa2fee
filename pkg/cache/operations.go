package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"house-info-api/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisOperations implements CacheOperations with JSON values on a Redis client.
type RedisOperations struct {
	client CacheClient
}

func NewRedisOperations(client CacheClient) *RedisOperations {
	return &RedisOperations{client: client}
}

// store a value in the cache with the given key and expiration time.
func (r *RedisOperations) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, false)
	}
	err = r.client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", time.Since(start).Seconds())
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into dest.
func (r *RedisOperations) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := r.client.Get(ctx, key).Result()
	RecordOperationDuration("get", time.Since(start).Seconds())
	if errors.Is(err, redis.Nil) {
		return NewCacheError("get", ErrCacheMiss, false)
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// Ping checks that the Redis server answers.
func (r *RedisOperations) Ping(ctx context.Context) error {
	start := time.Now()
	err := r.client.Ping(ctx).Err()
	RecordOperationDuration("ping", time.Since(start).Seconds())
	if err != nil {
		IncrementError("ping")
		return NewCacheError("ping", err, true)
	}
	return nil
}
