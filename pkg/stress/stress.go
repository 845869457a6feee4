package stress

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/evictcache/pkg/cache"
	"github.com/dmitrymomot/evictcache/pkg/logger"
)

// Config describes a stress run.
type Config struct {
	Workers      int    // concurrent goroutines
	OpsPerWorker int    // operations each worker performs
	Keys         int    // size of the key space, keys are 0..Keys-1
	Capacity     int    // capacity the cache was built with
	Seed         uint64 // base seed; worker i uses Seed+i
}

func (c Config) validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case c.OpsPerWorker <= 0:
		return fmt.Errorf("%w: ops per worker must be positive", ErrInvalidConfig)
	case c.Keys <= 0:
		return fmt.Errorf("%w: keys must be positive", ErrInvalidConfig)
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidConfig)
	}
	return nil
}

// Report summarises a stress run.
type Report struct {
	ID       uuid.UUID
	Gets     uint64
	Hits     uint64
	Misses   uint64
	Puts     uint64
	Removes  uint64
	MaxLen   int64
	Duration time.Duration
}

// Ops returns the total number of operations performed.
func (r Report) Ops() uint64 {
	return r.Gets + r.Puts + r.Removes
}

type counters struct {
	gets, hits, misses, puts, removes atomic.Uint64
	maxLen                            atomic.Int64
}

func (c *counters) observeLen(n int) {
	for {
		cur := c.maxLen.Load()
		if int64(n) <= cur || c.maxLen.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}

// Run hammers p with random get, put and remove calls from cfg.Workers
// goroutines and checks Len against cfg.Capacity after every put. The first
// violation or unexpected cache error cancels the remaining workers.
func Run(ctx context.Context, p cache.EvictionPolicy[int, int], cfg Config, log *slog.Logger) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	report := Report{ID: uuid.New()}
	log = log.With(logger.Component("stress"), logger.RunID(report.ID))

	var cnt counters
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		seed := cfg.Seed + uint64(w)
		g.Go(func() error {
			return work(gctx, p, cfg, seed, &cnt)
		})
	}
	err := g.Wait()

	report.Duration = time.Since(start)
	report.Gets = cnt.gets.Load()
	report.Hits = cnt.hits.Load()
	report.Misses = cnt.misses.Load()
	report.Puts = cnt.puts.Load()
	report.Removes = cnt.removes.Load()
	report.MaxLen = cnt.maxLen.Load()

	if err != nil {
		log.Error("stress run failed", logger.Error(err), logger.Duration(report.Duration))
		return report, err
	}

	log.Info("stress run finished",
		slog.Uint64("ops", report.Ops()),
		slog.Int64("max_len", report.MaxLen),
		logger.Capacity(cfg.Capacity),
		logger.Duration(report.Duration),
	)
	return report, nil
}

func work(ctx context.Context, p cache.EvictionPolicy[int, int], cfg Config, seed uint64, cnt *counters) error {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	for i := range cfg.OpsPerWorker {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		key := r.IntN(cfg.Keys)
		switch r.IntN(3) {
		case 0:
			_, ok, err := p.Get(key)
			if err != nil {
				return fmt.Errorf("get %d: %w", key, err)
			}
			cnt.gets.Add(1)
			if ok {
				cnt.hits.Add(1)
			} else {
				cnt.misses.Add(1)
			}
		case 1:
			if err := p.Put(key, r.Int()); err != nil {
				return fmt.Errorf("put %d: %w", key, err)
			}
			cnt.puts.Add(1)

			n := p.Len()
			cnt.observeLen(n)
			if n > cfg.Capacity {
				return fmt.Errorf("%w: len %d exceeds capacity %d", ErrInvariantViolated, n, cfg.Capacity)
			}
		default:
			if err := p.Remove(key); err != nil {
				return fmt.Errorf("remove %d: %w", key, err)
			}
			cnt.removes.Add(1)
		}
	}
	return nil
}
