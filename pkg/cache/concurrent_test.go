package cache_test

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/evictcache/pkg/cache"
)

func TestLRUCache_Concurrent(t *testing.T) {
	const (
		capacity = 8
		keys     = 32
		workers  = 16
		ops      = 2000
	)

	c := cache.MustNew[int, int](capacity)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		gets uint64
		errs []error
	)

	for w := range workers {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			r := rand.New(rand.NewPCG(seed, seed*31+7))
			var localGets uint64
			for range ops {
				key := r.IntN(keys)
				var err error
				switch r.IntN(3) {
				case 0:
					_, _, err = c.Get(key)
					localGets++
				case 1:
					err = c.Put(key, key*10)
				default:
					err = c.Remove(key)
				}
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
				if n := c.Len(); n > capacity {
					mu.Lock()
					errs = append(errs, fmt.Errorf("len %d exceeds capacity %d", n, capacity))
					mu.Unlock()
				}
			}
			mu.Lock()
			gets += localGets
			mu.Unlock()
		}(uint64(w + 1))
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.LessOrEqual(t, c.Len(), capacity)
	assert.Equal(t, gets, c.HitCount()+c.MissCount())
	assert.Len(t, c.Keys(), c.Len())
}

func TestLRUCache_ConcurrentSameKey(t *testing.T) {
	c := cache.MustNew[string, int](2)
	require.NoError(t, c.Put("hot", 0))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			for range 100 {
				_ = c.Put("hot", v)
				_, _, _ = c.Get("hot")
			}
		}(i)
	}
	wg.Wait()

	val, ok, err := c.Get("hot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, val, 0)
	assert.Less(t, val, 50)
	assert.Equal(t, uint64(50*100+1), c.HitCount())
	assert.Equal(t, 1, c.Len())
}

func BenchmarkLRUCache_Put(b *testing.B) {
	c := cache.MustNew[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		_ = c.Put(i%2000, i)
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	c := cache.MustNew[int, int](1000)
	for i := range 1000 {
		_ = c.Put(i, i)
	}

	b.ResetTimer()
	for i := range b.N {
		_, _, _ = c.Get(i % 1000)
	}
}

func BenchmarkLRUCache_Mixed(b *testing.B) {
	c := cache.MustNew[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		if i%2 == 0 {
			_ = c.Put(i%2000, i)
		} else {
			_, _, _ = c.Get(i % 2000)
		}
	}
}

func BenchmarkLRUCache_Parallel(b *testing.B) {
	c := cache.MustNew[int, int](1000)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%4 == 0 {
				_ = c.Put(i%2000, i)
			} else {
				_, _, _ = c.Get(i % 2000)
			}
			i++
		}
	})
}
