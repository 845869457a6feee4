package cache

import "errors"

// ErrInvalidArgument is returned for a non-positive capacity and for nil keys
// or values. The cache is left unchanged when it is returned.
var ErrInvalidArgument = errors.New("cache: invalid argument")
