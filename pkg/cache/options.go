package cache

import "log/slog"

// Option configures an LRUCache.
type Option[K comparable, V any] func(*LRUCache[K, V])

// WithEvictCallback registers fn to be called with every entry the policy
// evicts, either because the cache was full or through Evict. Entries dropped
// by Remove or Clear are not reported.
//
// fn runs while the cache lock is held and must not call back into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		c.onEvict = fn
	}
}

// WithLogger sets the logger used for debug-level eviction records.
// Nil loggers are ignored.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(c *LRUCache[K, V]) {
		if l != nil {
			c.logger = l
		}
	}
}
