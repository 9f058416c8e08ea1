// Package output provides output formatting for vecmap-bench.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Result pivot tables, one column per contender
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//   - progress.go: Progress bar for a running benchmark
//
// Table output is for people; json and yaml carry the same results in a
// machine-readable form for scripting.
package output
