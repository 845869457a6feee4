package cache

import "reflect"

// Cache is the minimal surface every cache variant implements.
type Cache[K comparable, V any] interface {
	// Get returns the value stored under key and whether it was present.
	// A missing key is not an error.
	Get(key K) (V, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key K, value V) error

	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key K) error

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries.
	Clear()
}

// EvictionPolicy extends Cache with the hooks a concrete eviction strategy
// (LRU, LFU, ...) implements. ShouldEvict must stay consistent with Len and
// the capacity the policy was built with.
type EvictionPolicy[K comparable, V any] interface {
	Cache[K, V]

	// Evict removes exactly one entry chosen by the policy and reports
	// whether anything was removed. It is a no-op on an empty cache.
	Evict() bool

	// OnAccess notifies the policy that key was read.
	OnAccess(key K)

	// OnUpdate notifies the policy that the value of key changed.
	OnUpdate(key K)

	// ShouldEvict reports whether inserting a new key would exceed capacity.
	ShouldEvict() bool
}

// nillable reports whether values of T can be nil.
func nillable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v is nil, including typed nil pointers held in an
// interface.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
