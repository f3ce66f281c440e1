// Package memo provides explicit, resettable memoization caches.
//
// A Cache maps an argument key to the result computed for it. Entries are created
// lazily on first use and live until Reset or Invalidate drops them; there is no
// eviction, TTL or size bound.
package memo

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

const shardCount = 16

// Resetter is the type-erased handle to a Cache, used by callers that only manage
// cache lifecycle.
type Resetter interface {
	// Name identifies the memoized operation.
	Name() string
	// Len returns the number of populated entries.
	Len() int
	// Reset drops every entry.
	Reset()
	// Invalidate drops the entry for key, if any.
	Invalidate(key string)
}

var _ Resetter = (*Cache[struct{}])(nil)

// Cache memoizes values of type V by string key.
// It is safe for concurrent use.
type Cache[V any] struct {
	name   string
	shards [shardCount]*shard[V]
	group  singleflight.Group
	// gen is bumped by Reset so that computations started before a reset do not
	// repopulate the cache afterwards.
	gen atomic.Uint64
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	// epochs counts Invalidate calls per key, for the same purpose as gen.
	epochs map[string]uint64
}

// New creates an empty Cache for the named operation.
func New[V any](name string) *Cache[V] {
	c := &Cache[V]{name: name}
	for i := range c.shards {
		c.shards[i] = &shard[V]{entries: make(map[string]V), epochs: make(map[string]uint64)}
	}
	return c
}

// Name returns the operation name the cache was created with.
func (c *Cache[V]) Name() string {
	return c.name
}

func (c *Cache[V]) shardFor(key string) *shard[V] {
	return c.shards[xxhash.Sum64String(key)%shardCount]
}

// Get returns the cached value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	return v, ok
}

// Do returns the cached value for key, computing it with fn on a miss.
//
// A value is stored only when fn succeeds; an error is handed back to the caller and
// the next call for the same key runs fn again. Concurrent misses for one key share a
// single fn call.
func (c *Cache[V]) Do(key string, fn func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		// A flight that finished between our miss and joining the group has already stored it.
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		s := c.shardFor(key)
		gen := c.gen.Load()
		s.mu.RLock()
		epoch := s.epochs[key]
		s.mu.RUnlock()

		v, err := fn()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if c.gen.Load() == gen && s.epochs[key] == epoch {
			s.entries[key] = v
		}
		s.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := res.(V)
	return v, nil
}

// Len returns the number of populated entries.
func (c *Cache[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Reset drops every entry.
func (c *Cache[V]) Reset() {
	c.gen.Add(1)
	for _, s := range c.shards {
		s.mu.Lock()
		clear(s.entries)
		clear(s.epochs)
		s.mu.Unlock()
	}
}

// Invalidate drops the entry for key, if any.
// A computation for key already in flight still returns to its callers but is not stored.
func (c *Cache[V]) Invalidate(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.epochs[key]++
	s.mu.Unlock()
	c.group.Forget(key)
}
