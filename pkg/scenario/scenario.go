package scenario

import (
	"fmt"
	"slices"
)

// Op names a cache operation in a scenario step.
type Op string

const (
	OpPut    Op = "put"
	OpGet    Op = "get"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
	OpEvict  Op = "evict"
	OpSize   Op = "size"
	OpStats  Op = "stats"
	OpKeys   Op = "keys"
)

var knownOps = []Op{OpPut, OpGet, OpRemove, OpClear, OpEvict, OpSize, OpStats, OpKeys}

// Scenario is a scripted sequence of operations replayed against a fresh
// LRU cache of the given capacity.
type Scenario struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

// Step is one operation plus the expectations checked right after it.
// Pointer fields are optional; nil means "not checked".
type Step struct {
	Op    Op     `yaml:"op"`
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value,omitempty"`

	// get
	Expect *string `yaml:"expect,omitempty"`
	Absent bool    `yaml:"absent,omitempty"`

	// evict
	Evicted *bool `yaml:"evicted,omitempty"`

	// size
	Size *int `yaml:"size,omitempty"`

	// stats
	Hits      *uint64  `yaml:"hits,omitempty"`
	Misses    *uint64  `yaml:"misses,omitempty"`
	Evictions *uint64  `yaml:"evictions,omitempty"`
	HitRate   *float64 `yaml:"hit_rate,omitempty"`

	// keys, most recently used first
	Keys []string `yaml:"keys,omitempty"`
}

// Validate reports structural problems that would make a run meaningless.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: %q: capacity must be positive, got %d", ErrInvalidScenario, s.Name, s.Capacity)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: %q: no steps", ErrInvalidScenario, s.Name)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("%q step %d: %w", s.Name, i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if !slices.Contains(knownOps, st.Op) {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, st.Op)
	}
	switch st.Op {
	case OpPut, OpGet, OpRemove:
		if st.Key == "" {
			return fmt.Errorf("%w: %s requires a key", ErrInvalidScenario, st.Op)
		}
	}
	if st.Op == OpGet && st.Absent && st.Expect != nil {
		return fmt.Errorf("%w: get cannot expect both a value and absence", ErrInvalidScenario)
	}
	if st.Op == OpSize && st.Size == nil {
		return fmt.Errorf("%w: size requires an expected size", ErrInvalidScenario)
	}
	return nil
}
