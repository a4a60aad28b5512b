package lru

import "sync"

// DefaultCapacity is used by New when capacity is not positive.
const DefaultCapacity = 64

// Cache is a bounded LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	order    list[K, V]
	capacity int
	stats    Stats
}

// Stats counts cache traffic since creation or the last Purge.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a cache holding at most capacity entries.
// A capacity of 0 or less selects DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V], capacity),
		capacity: capacity,
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. Errors from load are returned as is and nothing is cached.
// hit reports whether the value came from the cache.
//
// load runs under the cache lock, so concurrent callers never load the same
// key twice.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (value V, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.stats.Hits++
		c.order.moveToFront(n)
		return n.value, true, nil
	}
	c.stats.Misses++

	value, err = load()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.add(key, value)
	return value, false, nil
}

// Purge removes every entry and resets the statistics.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*node[K, V], c.capacity)
	c.order = list[K, V]{}
	c.stats = Stats{}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.len
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Len = c.order.len
	s.Capacity = c.capacity
	return s
}

// add inserts key, which must not be present, evicting the least recently
// used entry when the cache is full. Caller must hold c.mu.
func (c *Cache[K, V]) add(key K, value V) {
	c.entries[key] = c.order.pushFront(key, value)
	if c.order.len <= c.capacity {
		return
	}
	oldest := c.order.removeOldest()
	delete(c.entries, oldest.key)
	c.stats.Evictions++
}
