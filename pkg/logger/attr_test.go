package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/evictcache/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"component", logger.Component("cache"), "component", "cache"},
		{"event", logger.Event("evict"), "event", "evict"},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
		{"key", logger.Key("user:1"), "key", "user:1"},
		{"capacity", logger.Capacity(128), "capacity", int64(128)},
		{"hit rate", logger.HitRate(0.5), "hit_rate", 0.5},
		{"run id", logger.RunID("abc"), "run_id", "abc"},
		{"scenario", logger.Scenario("basic"), "scenario", "basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestRunIDNil(t *testing.T) {
	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
}
