package stress

import "errors"

var (
	ErrInvalidConfig     = errors.New("stress: invalid config")
	ErrInvariantViolated = errors.New("stress: cache invariant violated")
)
