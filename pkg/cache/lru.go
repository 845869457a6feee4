package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/evictcache/pkg/logger"
)

var _ EvictionPolicy[string, any] = (*LRUCache[string, any])(nil)

// LRUCache is a thread-safe cache that evicts the least recently used entry
// once it holds capacity entries and a new key is inserted.
//
// A single mutex guards both the index and the recency list. Every Get hit
// reorders the list, so a reader/writer split would buy nothing.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	recency  *recencyList[K, V]
	onEvict  func(key K, value V)
	logger   *slog.Logger

	// Written only with mu held; atomic so readers can skip the lock.
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64

	checkKey   bool
	checkValue bool
}

// New creates an LRU cache holding at most capacity entries.
// It returns ErrInvalidArgument if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}

	c := &LRUCache[K, V]{
		capacity:   capacity,
		items:      make(map[K]*node[K, V], capacity),
		recency:    newRecencyList[K, V](),
		logger:     logger.NewNop(),
		checkKey:   nillable[K](),
		checkValue: nillable[V](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// SetEvictCallback replaces the eviction callback. See WithEvictCallback.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns the value for key and marks it as most recently used.
// A miss is counted and leaves the cache untouched.
func (c *LRUCache[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := c.validateKey(key); err != nil {
		return zero, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		return zero, false, nil
	}

	c.hits.Add(1)
	c.onAccessLocked(key)
	return n.value, true, nil
}

// Put stores value under key and marks it as most recently used. When the key
// is new and the cache is full, the least recently used entry is evicted
// first, so Len never exceeds the capacity.
func (c *LRUCache[K, V]) Put(key K, value V) error {
	if err := c.validateKey(key); err != nil {
		return err
	}
	if c.checkValue && isNil(value) {
		return fmt.Errorf("%w: nil value", ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.onUpdateLocked(key)
		return nil
	}

	if c.shouldEvictLocked() {
		c.evictLocked()
	}

	n := &node[K, V]{key: key, value: value}
	c.recency.pushFront(n)
	c.items[key] = n
	return nil
}

// Remove deletes key from the cache. A missing key is a no-op.
func (c *LRUCache[K, V]) Remove(key K) error {
	if err := c.validateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		delete(c.items, key)
		c.recency.remove(n)
	}
	return nil
}

// Len returns the number of entries currently held.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cap returns the capacity the cache was created with.
func (c *LRUCache[K, V]) Cap() int {
	return c.capacity
}

// Clear removes all entries. Hit, miss and eviction counters are kept.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.recency.clear()
}

// Evict removes the least recently used entry. It reports false if the cache
// was empty.
func (c *LRUCache[K, V]) Evict() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictLocked()
}

// OnAccess marks key as most recently used. Unknown keys are ignored.
func (c *LRUCache[K, V]) OnAccess(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAccessLocked(key)
}

// OnUpdate marks key as most recently used. Unknown keys are ignored.
func (c *LRUCache[K, V]) OnUpdate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdateLocked(key)
}

// ShouldEvict reports whether inserting a new key right now would first
// require an eviction.
func (c *LRUCache[K, V]) ShouldEvict() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shouldEvictLocked()
}

// Peek returns the value for key without changing its recency or the
// counters.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present without changing its recency or
// the counters.
func (c *LRUCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Keys returns the keys ordered from most to least recently used.
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.recency.len())
	c.recency.each(func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func (c *LRUCache[K, V]) validateKey(key K) error {
	if c.checkKey && isNil(key) {
		return fmt.Errorf("%w: nil key", ErrInvalidArgument)
	}
	return nil
}

// Must be called with lock held.
func (c *LRUCache[K, V]) shouldEvictLocked() bool {
	return len(c.items) >= c.capacity
}

// Must be called with lock held.
func (c *LRUCache[K, V]) onAccessLocked(key K) {
	if n, ok := c.items[key]; ok {
		c.recency.moveToFront(n)
	}
}

// Must be called with lock held.
func (c *LRUCache[K, V]) onUpdateLocked(key K) {
	c.onAccessLocked(key)
}

// Must be called with lock held.
func (c *LRUCache[K, V]) evictLocked() bool {
	n := c.recency.removeLast()
	if n == nil {
		return false
	}
	delete(c.items, n.key)
	c.evictions.Add(1)

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("evicted least recently used entry",
			logger.Component("cache"),
			logger.Key(n.key),
			logger.Capacity(c.capacity),
		)
	}

	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
	return true
}
