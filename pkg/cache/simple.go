package cache

import "sync"

// simpleCache is a thread-safe cache with no eviction policy. Entries are
// stored until explicitly deleted or cleared.
type simpleCache[V any] struct {
	mu      sync.RWMutex
	items   map[string]V
	stats   *Statistics
	metrics *cacheMetrics
}

// NewSimple creates a cache with no eviction policy. An error is returned
// only if Prometheus metrics were requested and registration failed.
func NewSimple[V any](opts ...Option) (Cache[V], error) {
	o := applyOptions(opts...)

	var metrics *cacheMetrics
	if o.registerer != nil {
		var err error
		metrics, err = newCacheMetrics(o.registerer, o.name)
		if err != nil {
			return nil, err
		}
	}

	return &simpleCache[V]{
		items:   make(map[string]V),
		stats:   &Statistics{},
		metrics: metrics,
	}, nil
}

// Get retrieves a value by key.
func (c *simpleCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, exists := c.items[key]
	c.mu.RUnlock()

	if exists {
		c.stats.Hit()
		if c.metrics != nil {
			c.metrics.recordHit()
		}
	} else {
		c.stats.Miss()
		if c.metrics != nil {
			c.metrics.recordMiss()
		}
	}
	return value, exists
}

// Set stores a value under the given key.
func (c *simpleCache[V]) Set(key string, value V) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	c.mu.Lock()
	_, exists := c.items[key]
	c.items[key] = value
	size := len(c.items)
	c.mu.Unlock()

	c.stats.Set()
	c.stats.UpdateSize(int64(size))
	if c.metrics != nil {
		c.metrics.recordSet()
		c.metrics.updateSize(size)
	}
	return !exists, nil
}

// Delete removes an entry by key.
func (c *simpleCache[V]) Delete(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	c.mu.Lock()
	_, exists := c.items[key]
	delete(c.items, key)
	size := len(c.items)
	c.mu.Unlock()

	if exists {
		c.stats.UpdateSize(int64(size))
		if c.metrics != nil {
			c.metrics.updateSize(size)
		}
	}
	return exists, nil
}

// Clear removes all entries.
func (c *simpleCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]V)
	c.mu.Unlock()

	c.stats.UpdateSize(0)
	if c.metrics != nil {
		c.metrics.updateSize(0)
	}
}

// Size returns the current number of entries.
func (c *simpleCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns all keys currently in the cache.
func (c *simpleCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

// Stats returns the cache statistics tracker.
func (c *simpleCache[V]) Stats() *Statistics {
	return c.stats
}
