package scenario

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/dmitrymomot/evictcache/pkg/cache"
)

// hitRateTolerance absorbs the rounding of hit rates written in scripts.
const hitRateTolerance = 0.001

// Failure describes one unmet expectation.
type Failure struct {
	Step    int
	Op      Op
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Op, f.Message)
}

// Result is the outcome of replaying one scenario.
type Result struct {
	Scenario string
	Steps    int
	Failures []Failure
	Stats    cache.Stats
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run replays sc against a new cache. Unmet expectations are collected in the
// result; an error means the scenario could not be executed at all.
func Run(ctx context.Context, sc Scenario) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}

	c, err := cache.New[string, string](sc.Capacity)
	if err != nil {
		return Result{}, err
	}

	res := Result{Scenario: sc.Name}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		msgs, err := apply(c, step)
		if err != nil {
			return res, fmt.Errorf("%q step %d: %w", sc.Name, i+1, err)
		}
		for _, m := range msgs {
			res.Failures = append(res.Failures, Failure{Step: i + 1, Op: step.Op, Message: m})
		}
		res.Steps++
	}
	res.Stats = c.Stats()
	return res, nil
}

// RunAll runs scenarios in order and stops only on execution errors.
func RunAll(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := Run(ctx, sc)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func apply(c *cache.LRUCache[string, string], st Step) ([]string, error) {
	var msgs []string
	fail := func(format string, args ...any) {
		msgs = append(msgs, fmt.Sprintf(format, args...))
	}

	switch st.Op {
	case OpPut:
		if err := c.Put(st.Key, st.Value); err != nil {
			return nil, err
		}
		if n := c.Len(); n > c.Cap() {
			fail("size %d exceeds capacity %d", n, c.Cap())
		}

	case OpGet:
		v, ok, err := c.Get(st.Key)
		if err != nil {
			return nil, err
		}
		switch {
		case st.Absent && ok:
			fail("expected %q to be absent, got %q", st.Key, v)
		case st.Expect != nil && !ok:
			fail("expected %q=%q, key is absent", st.Key, *st.Expect)
		case st.Expect != nil && v != *st.Expect:
			fail("expected %q=%q, got %q", st.Key, *st.Expect, v)
		}

	case OpRemove:
		if err := c.Remove(st.Key); err != nil {
			return nil, err
		}

	case OpClear:
		c.Clear()

	case OpEvict:
		evicted := c.Evict()
		if st.Evicted != nil && evicted != *st.Evicted {
			fail("expected evicted=%t, got %t", *st.Evicted, evicted)
		}

	case OpSize:
		if n := c.Len(); n != *st.Size {
			fail("expected size %d, got %d", *st.Size, n)
		}

	case OpStats:
		s := c.Stats()
		if st.Hits != nil && s.Hits != *st.Hits {
			fail("expected %d hits, got %d", *st.Hits, s.Hits)
		}
		if st.Misses != nil && s.Misses != *st.Misses {
			fail("expected %d misses, got %d", *st.Misses, s.Misses)
		}
		if st.Evictions != nil && s.Evictions != *st.Evictions {
			fail("expected %d evictions, got %d", *st.Evictions, s.Evictions)
		}
		if st.HitRate != nil && math.Abs(s.HitRate()-*st.HitRate) > hitRateTolerance {
			fail("expected hit rate %.3f, got %.3f", *st.HitRate, s.HitRate())
		}

	case OpKeys:
		if got := c.Keys(); !slices.Equal(got, st.Keys) {
			fail("expected keys %v, got %v", st.Keys, got)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, st.Op)
	}
	return msgs, nil
}
