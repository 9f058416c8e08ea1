// Package main provides the entry point for vecmap-bench.
//
// vecmap-bench measures the sequential header map against a Go map and a
// murmur3 bucket table and a lock-striped map on realistic HTTP header workloads:
//
//   - insert, add_dup, get_hit, get_miss and remove per map size
//   - results as a table, JSON or YAML
//   - optional Prometheus text-file export
//
// Usage:
//
//	vecmap-bench run
//	vecmap-bench -c bench.yaml -o json run --sizes 8,32 --rounds 500
//	vecmap-bench config show
//	vecmap-bench version
package main
