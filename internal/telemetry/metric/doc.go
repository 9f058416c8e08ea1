// Package metric provides Prometheus metrics for the header-map benchmark.
//
// Measurements are recorded per contender, operation and map size:
//
//   - vecmap_bench_op_seconds: histogram of per-operation latency per round
//   - vecmap_bench_ops_total: number of operations executed
//   - vecmap_bench_ns_per_op: latest mean latency in nanoseconds
//
// A Registry is private to one run, so several runs never share state. It
// can be exported as a node_exporter text file with WriteFile.
package metric
