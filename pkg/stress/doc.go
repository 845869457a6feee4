// Package stress drives an eviction policy from many goroutines at once and
// checks that it never holds more entries than its capacity.
package stress
