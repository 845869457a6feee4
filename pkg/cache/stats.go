package cache

// Stats is a point-in-time snapshot of the cache counters. Counters are
// lifetime totals and survive Clear.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// HitCount returns the number of Get calls that found their key.
func (c *LRUCache[K, V]) HitCount() uint64 {
	return c.hits.Load()
}

// MissCount returns the number of Get calls that did not find their key.
func (c *LRUCache[K, V]) MissCount() uint64 {
	return c.misses.Load()
}

// HitRate returns the fraction of Get calls that were hits, in [0, 1].
// It is 0 when no Get has been made yet.
func (c *LRUCache[K, V]) HitRate() float64 {
	return c.Stats().HitRate()
}

// Stats returns a consistent snapshot of all counters.
func (c *LRUCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
