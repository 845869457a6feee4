package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/evictcache/pkg/scenario"
)

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("single document", func(t *testing.T) {
		scs, err := scenario.Parse(ctx, []byte(`
name: single
capacity: 2
steps:
  - {op: put, key: a, value: "1"}
  - {op: get, key: a, expect: "1"}
`))
		require.NoError(t, err)
		require.Len(t, scs, 1)
		assert.Equal(t, "single", scs[0].Name)
		assert.Equal(t, 2, scs[0].Capacity)
		require.Len(t, scs[0].Steps, 2)
		assert.Equal(t, scenario.OpPut, scs[0].Steps[0].Op)
		require.NotNil(t, scs[0].Steps[1].Expect)
		assert.Equal(t, "1", *scs[0].Steps[1].Expect)
	})

	t.Run("list and multiple documents", func(t *testing.T) {
		scs, err := scenario.Parse(ctx, []byte(`
- name: one
  capacity: 1
  steps: [{op: clear}]
- name: two
  capacity: 1
  steps: [{op: size, size: 0}]
---
name: three
capacity: 1
steps: [{op: evict}]
`))
		require.NoError(t, err)
		require.Len(t, scs, 3)
		assert.Equal(t, "three", scs[2].Name)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := scenario.Parse(ctx, []byte("name: [unclosed"))
		require.ErrorIs(t, err, scenario.ErrFailedToParseYAML)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := scenario.Parse(ctx, []byte(""))
		require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	})

	t.Run("scalar root", func(t *testing.T) {
		_, err := scenario.Parse(ctx, []byte("just a string"))
		require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := scenario.Parse(cctx, []byte("name: x"))
		require.ErrorIs(t, err, scenario.ErrParsingCancelled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing name", "capacity: 1\nsteps: [{op: clear}]", scenario.ErrInvalidScenario},
		{"zero capacity", "name: x\ncapacity: 0\nsteps: [{op: clear}]", scenario.ErrInvalidScenario},
		{"no steps", "name: x\ncapacity: 1", scenario.ErrInvalidScenario},
		{"unknown op", "name: x\ncapacity: 1\nsteps: [{op: flush}]", scenario.ErrUnknownOperation},
		{"put without key", "name: x\ncapacity: 1\nsteps: [{op: put, value: v}]", scenario.ErrInvalidScenario},
		{"size without expectation", "name: x\ncapacity: 1\nsteps: [{op: size}]", scenario.ErrInvalidScenario},
		{"get expecting both", "name: x\ncapacity: 1\nsteps: [{op: get, key: a, expect: v, absent: true}]", scenario.ErrInvalidScenario},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse(context.Background(), []byte(tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\ncapacity: 1\nsteps: [{op: size, size: 0}]\n"), 0o600))

	scs, err := scenario.LoadFiles(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, scs, 1)
	assert.Equal(t, "file", scs[0].Name)

	_, err = scenario.LoadFiles(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, scenario.ErrReadingFile)
}

func TestDefaults(t *testing.T) {
	scs, err := scenario.Defaults(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(scs), 8)

	names := make(map[string]bool, len(scs))
	for _, sc := range scs {
		assert.False(t, names[sc.Name], "duplicate scenario name %q", sc.Name)
		names[sc.Name] = true
	}
}
