// Package command defines the vecmap-bench command line.
//
// Commands are built on urfave/cli/v2:
//
//   - root.go: application, global flags, config loading
//   - run.go: run the benchmark and report results
//   - config.go: show and validate the effective configuration
//   - version.go: build information
//
// Every command loads configuration the same way: defaults, then the
// YAML file named by --config, then VECMAP_* environment variables,
// then explicit flags.
package command
