package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is the disposable client-side cache in front of the API. Entries
// are keyed by (resource, parameter tuple); the server stays the source of
// truth, so mutations just invalidate the resource and let the next fetch
// reload it. Identical concurrent fetches are collapsed into one request.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// New creates a cache. ttl limits how long an entry is served without a
// re-fetch; zero means entries live until invalidated.
func New(ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch returns the cached value for (resource, key) or runs load once,
// caching its result. Concurrent callers with the same key share one load.
func (c *Cache) Fetch(ctx context.Context, resource, key string, load func(context.Context) (any, error)) (any, error) {
	fullKey := resource + "|" + key

	c.mu.RLock()
	cached, ok := c.entries[fullKey]
	c.mu.RUnlock()
	if ok && !c.stale(cached) {
		return cached.value, nil
	}

	value, err, shared := c.group.Do(fullKey, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[fullKey] = entry{value: loaded, fetchedAt: c.now()}
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		c.logger.Debug("Deduplicated concurrent fetch",
			zap.String("resource", resource),
			zap.String("key", key))
	}
	return value, nil
}

// Invalidate drops every cached page of the resource.
func (c *Cache) Invalidate(resource string) {
	prefix := resource + "|"

	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.logger.Debug("Cache invalidated",
		zap.String("resource", resource),
		zap.Int("entries", removed))
}

// InvalidateAll empties the cache, e.g. on logout.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *Cache) stale(e entry) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(e.fetchedAt) > c.ttl
}

// Fetch is the typed wrapper around Cache.Fetch.
func Fetch[T any](ctx context.Context, c *Cache, resource, key string, load func(context.Context) (T, error)) (T, error) {
	value, err := c.Fetch(ctx, resource, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
