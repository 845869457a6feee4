// Package cache provides a generic, thread-safe, capacity-bounded cache with
// a pluggable eviction policy and an LRU (Least Recently Used) implementation.
//
// # Contracts
//
// Cache is the consumer-facing surface: Get, Put, Remove, Len and Clear.
// EvictionPolicy extends it with the hooks a concrete strategy implements:
//
//   - Evict removes one entry chosen by the policy
//   - OnAccess is called when a key is read
//   - OnUpdate is called when a key's value changes
//   - ShouldEvict reports whether the next insertion would exceed capacity
//
// LRUCache is the only policy shipped here. Another strategy (for example
// LFU) plugs in by implementing EvictionPolicy.
//
// # Usage
//
//	c, err := cache.New[string, *Session](1000)
//	if err != nil {
//		return err
//	}
//
//	if err := c.Put("sess:abc", sess); err != nil {
//		return err
//	}
//
//	sess, found, err := c.Get("sess:abc")
//
// Nil keys and nil values are rejected with ErrInvalidArgument. A missing key
// is not an error: Get reports it through the boolean and Remove is a no-op.
// Nil checks only apply to nillable types (pointers, interfaces, maps, slices,
// funcs, chans); a cache keyed by string never pays for them.
//
// # Eviction
//
// Items become most recently used when they are read with Get or written with
// Put. When a new key is inserted into a full cache, the least recently used
// entry is removed before the new one is added, so Len never exceeds the
// capacity, not even transiently. Peek, Contains and Keys never change the
// order.
//
// Use WithEvictCallback to release resources held by evicted values:
//
//	c := cache.MustNew(10, cache.WithEvictCallback(func(dsn string, db *sql.DB) {
//		db.Close()
//	}))
//
// # Thread Safety
//
// One mutex guards the index and the recency list together, so lookup,
// reordering and eviction are a single atomic step for every caller.
//
// # Statistics
//
// HitCount, MissCount, HitRate and Stats expose lifetime counters owned by
// each cache instance. Clear does not reset them.
package cache
