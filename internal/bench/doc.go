// Package bench runs the header-map benchmark.
//
// The benchmark compares header stores on realistic request headers at
// small sizes, where a linear scan is expected to win:
//
//   - vecmap: header.Map, a slice of pairs searched linearly
//   - gomap: a Go map keyed by canonical names, like net/http.Header
//   - murmur: a chained hash table keyed by murmur3
//   - sharded: a lock-striped Go map, to price locking
//
// Each contender runs the same operations (insert, add_dup, get_hit,
// get_miss, remove) at every configured size. Rounds are timed separately
// and recorded in a metric.Registry; the mean ns/op becomes a Result.
// Every round also checks the store's answers, so a broken contender fails
// the run instead of producing a fast number.
package bench
