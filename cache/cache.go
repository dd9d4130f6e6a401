// Package cache memoizes results that are expensive to compute and asked
// for again and again, such as whether a run of tiles can be read as a true
// equation. Every change to the board rescans the whole board, so the same
// runs are validated many times.
package cache

import (
	"sync"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

type entry[V any] struct {
	key string
	val V
}

type loadFunc[V any] func(key string) (V, error)

// A Cache maps string keys to values. It is safe for concurrent use. When
// it is full it is emptied and starts over.
type Cache[V any] struct {
	sync.Mutex
	objects    map[uint64]entry[V]
	maxEntries int

	hits   uint64
	misses uint64
}

// New creates a cache holding at most maxEntries objects. A maxEntries of
// 0 or less sizes the cache from the system memory.
func New[V any](maxEntries int) *Cache[V] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries()
	}
	return &Cache[V]{objects: make(map[uint64]entry[V]), maxEntries: maxEntries}
}

const (
	approxEntrySize   = 256
	minDefaultEntries = 1 << 12
	maxDefaultEntries = 1 << 20
)

// DefaultMaxEntries allows the cache about 1/1000 of the total memory.
func DefaultMaxEntries() int {
	n := int(memory.TotalMemory() / 1000 / approxEntrySize)
	return max(minDefaultEntries, min(n, maxDefaultEntries))
}

// Get returns the object for the key, calling load on a miss. Errors are
// not cached. load runs without the lock held, so two goroutines may load
// the same key at once.
func (c *Cache[V]) Get(key string, load loadFunc[V]) (V, error) {
	h := xxhash.Sum64String(key)
	c.Lock()
	if e, ok := c.objects[h]; ok && e.key == key {
		c.hits++
		c.Unlock()
		return e.val, nil
	}
	c.misses++
	c.Unlock()

	val, err := load(key)
	if err != nil {
		return val, err
	}

	c.Lock()
	defer c.Unlock()
	if len(c.objects) >= c.maxEntries {
		log.Debug().Int("entries", len(c.objects)).Msg("cache full, clearing")
		clear(c.objects)
	}
	c.objects[h] = entry[V]{key: key, val: val}
	return val, nil
}

// Len returns the number of cached objects.
func (c *Cache[V]) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}

// Stats returns the number of hits and misses so far.
func (c *Cache[V]) Stats() (hits, misses uint64) {
	c.Lock()
	defer c.Unlock()
	return c.hits, c.misses
}
