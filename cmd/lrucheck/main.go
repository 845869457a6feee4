package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/evictcache/pkg/cache"
	"github.com/dmitrymomot/evictcache/pkg/config"
	"github.com/dmitrymomot/evictcache/pkg/logger"
	"github.com/dmitrymomot/evictcache/pkg/scenario"
	"github.com/dmitrymomot/evictcache/pkg/stress"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	Env      string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	Capacity      int      `env:"LRU_CAPACITY" envDefault:"64"`
	Workers       int      `env:"STRESS_WORKERS" envDefault:"8"`
	OpsPerWorker  int      `env:"STRESS_OPS" envDefault:"10000"`
	Keys          int      `env:"STRESS_KEYS" envDefault:"256"`
	Seed          uint64   `env:"STRESS_SEED" envDefault:"1"`
	ScenarioFiles []string `env:"SCENARIO_FILES" envSeparator:","`
}

type runIDKey struct{}

var errChecksFailed = errors.New("lrucheck: checks failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lrucheck: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "lrucheck"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)

	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "lrucheck failed", logger.Error(err))
		os.Exit(1)
	}
	log.InfoContext(ctx, "all checks passed")
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	scenarios, err := loadScenarios(ctx, cfg.ScenarioFiles)
	if err != nil {
		return err
	}

	failed := 0
	for _, sc := range scenarios {
		start := time.Now()
		res, err := scenario.Run(ctx, sc)
		if err != nil {
			return err
		}
		if !res.Passed() {
			failed++
			for _, f := range res.Failures {
				log.ErrorContext(ctx, "scenario expectation failed",
					logger.Scenario(res.Scenario),
					slog.Int("step", f.Step),
					slog.String("op", string(f.Op)),
					slog.String("detail", f.Message),
				)
			}
			continue
		}
		log.DebugContext(ctx, "scenario passed",
			logger.Scenario(res.Scenario),
			slog.Int("steps", res.Steps),
			logger.HitRate(res.Stats.HitRate()),
			logger.Duration(time.Since(start)),
		)
	}
	log.InfoContext(ctx, "scenarios finished",
		slog.Int("total", len(scenarios)),
		slog.Int("failed", failed),
	)

	c, err := cache.New(cfg.Capacity, cache.WithLogger[int, int](log))
	if err != nil {
		return err
	}
	report, err := stress.Run(ctx, c, stress.Config{
		Workers:      cfg.Workers,
		OpsPerWorker: cfg.OpsPerWorker,
		Keys:         cfg.Keys,
		Capacity:     cfg.Capacity,
		Seed:         cfg.Seed,
	}, log)
	if err != nil {
		return err
	}

	stats := c.Stats()
	log.InfoContext(ctx, "cache statistics",
		slog.Uint64("hits", stats.Hits),
		slog.Uint64("misses", stats.Misses),
		slog.Uint64("evictions", stats.Evictions),
		logger.HitRate(stats.HitRate()),
		slog.String("stress_id", report.ID.String()),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d scenarios", errChecksFailed, failed, len(scenarios))
	}
	return nil
}

func loadScenarios(ctx context.Context, files []string) ([]scenario.Scenario, error) {
	if len(files) == 0 {
		return scenario.Defaults(ctx)
	}
	return scenario.LoadFiles(ctx, files...)
}
