// Package lru provides a bounded, generic least-recently-used cache.
//
//	c := lru.New[string, *painter.Surface](64)
//	s, hit, err := c.GetOrLoad(path, func() (*painter.Surface, error) {
//		return painter.LoadSurface(path)
//	})
//
// When the cache is full, loading a new key evicts the least recently used
// entry. Every GetOrLoad call counts as a use of its key.
//
// Cache is safe for concurrent use and must not be copied after creation.
package lru
