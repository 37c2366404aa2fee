package repositories

import (
	"context"
	"time"

	"house-info-api/internal/models"
	"house-info-api/pkg/cache"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type geocodeCache struct {
	store   cache.CacheOperations
	backend string
}

func NewGeocodeCache(store cache.CacheOperations, backend string) GeocodeCache {
	return &geocodeCache{store: store, backend: backend}
}

// NewMemoryGeocodeCache returns a cache kept in process memory.
func NewMemoryGeocodeCache() GeocodeCache {
	return NewGeocodeCache(cache.NewCache(), BackendMemory)
}

// NewRedisGeocodeCache returns a cache backed by the given Redis client.
func NewRedisGeocodeCache(client cache.CacheClient) GeocodeCache {
	return NewGeocodeCache(cache.NewRedisOperations(client), BackendRedis)
}

// GetAddress returns nil without error on a miss.
func (c *geocodeCache) GetAddress(ctx context.Context, key string) (*models.AddressResult, error) {
	var address models.AddressResult
	if err := c.store.Get(ctx, key, &address); err != nil {
		if cache.IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (c *geocodeCache) SetAddress(ctx context.Context, key string, address *models.AddressResult, expiration time.Duration) error {
	return c.store.Set(ctx, key, address, expiration)
}

func (c *geocodeCache) Ping(ctx context.Context) error {
	if p, ok := c.store.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *geocodeCache) Backend() string {
	return c.backend
}
