package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Cache is an in-process CacheOperations used when Redis is disabled.
type Cache struct {
	store map[string]entry
	mu    sync.RWMutex
	now   func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		store: make(map[string]entry),
		now:   time.Now,
	}
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return NewCacheError("marshal", err, false)
	}
	e := entry{data: data}
	if expiration > 0 {
		e.expiresAt = c.now().Add(expiration)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = e
	return nil
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	e, ok := c.lookup(key)
	if !ok {
		return NewCacheError("get", ErrCacheMiss, false)
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Purge drops expired entries.
func (c *Cache) Purge() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.store {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(c.store, key)
		}
	}
}

func (c *Cache) lookup(key string) (entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		return entry{}, false
	}
	return e, true
}

// Janitor purges expired entries every interval until ctx is cancelled.
func (c *Cache) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}
