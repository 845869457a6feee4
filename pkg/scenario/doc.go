// Package scenario replays YAML-scripted operation sequences against an LRU
// cache and reports every unmet expectation.
//
// A script holds one scenario or a list of them:
//
//	- name: get promotes entry
//	  capacity: 3
//	  steps:
//	    - {op: put, key: a, value: "1"}
//	    - {op: put, key: b, value: "2"}
//	    - {op: get, key: a, expect: "1"}
//	    - {op: get, key: z, absent: true}
//	    - {op: keys, keys: [a, b]}
//	    - {op: stats, hits: 1, misses: 1, hit_rate: 0.5}
//
// Supported ops are put, get, remove, clear, evict, size, stats and keys.
// Defaults returns the built-in scripts shipped with the package.
package scenario
