// Package cache provides a bounded, thread-safe LRU memo.
//
// It backs the hot lookups of key inference and wrapper application: compiled
// delimiter patterns and text → key results are memoized so repeated
// translate calls skip regexp compilation and slug/CRC work.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re := patterns.GetOrCompute("**", compileDelimiter)
//
// Get, Put, GetOrCompute, Remove and Clear are O(1) and safe for concurrent
// use. Stats exposes hit, miss and eviction counters.
package cache
