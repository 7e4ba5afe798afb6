package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Options struct {
	TTL        time.Duration
	MaxEntries int
	// Clock overrides time.Now, mostly for tests.
	Clock func() time.Time
}

type MetricsHooks struct {
	OnHit   func(key string)
	OnMiss  func(key string)
	OnStore func(key string)
	OnError func(key string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a small TTL cache whose loads are collapsed per key, so concurrent
// misses on the same key run the loader once.
type Cache[V any] struct {
	mu      sync.RWMutex
	items   map[string]*entry[V]
	order   []string
	opts    Options
	metrics MetricsHooks
	sf      singleflight.Group
}

// Loader produces the value for a missing or expired key. Errors are never
// cached.
type Loader[V any] func(ctx context.Context, key string) (V, error)

func New[V any](opts Options, hooks MetricsHooks) *Cache[V] {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Cache[V]{
		items:   make(map[string]*entry[V]),
		order:   make([]string, 0, 16),
		opts:    opts,
		metrics: hooks,
	}
}

func (c *Cache[V]) Get(ctx context.Context, key string, loader Loader[V]) (V, error) {
	if v, ok := c.Peek(key); ok {
		if c.metrics.OnHit != nil {
			c.metrics.OnHit(key)
		}
		return v, nil
	}

	if c.metrics.OnMiss != nil {
		c.metrics.OnMiss(key)
	}
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another caller may have stored while we waited on the group.
		if v, ok := c.Peek(key); ok {
			return v, nil
		}
		val, err := loader(ctx, key)
		if err != nil {
			if c.metrics.OnError != nil {
				c.metrics.OnError(key)
			}
			return nil, err
		}
		c.Set(key, val, c.opts.TTL)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

func (c *Cache[V]) Set(key string, val V, ttl time.Duration) {
	c.mu.Lock()
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = &entry[V]{value: val, expiresAt: c.opts.Clock().Add(ttl)}
	c.evictIfNeeded()
	c.mu.Unlock()

	if c.metrics.OnStore != nil {
		c.metrics.OnStore(key)
	}
}

// Peek returns a cached value without triggering a load.
func (c *Cache[V]) Peek(key string) (V, bool) {
	now := c.opts.Clock()
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[key]
	if !ok || !now.Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// FIFO eviction
func (c *Cache[V]) evictIfNeeded() {
	if c.opts.MaxEntries <= 0 || len(c.items) <= c.opts.MaxEntries {
		return
	}
	excess := len(c.items) - c.opts.MaxEntries
	for excess > 0 && len(c.order) > 0 {
		victim := c.order[0]
		c.order = c.order[1:]
		delete(c.items, victim)
		excess--
	}
}
