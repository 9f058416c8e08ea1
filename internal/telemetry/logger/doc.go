// Package logger provides structured logging for vecmap-go tools.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, handler selection and level control
//   - context.go: Context propagation of the logger and the benchmark run ID
//   - redact.go: Masking of credential-bearing header values
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Automatic header credential masking
package logger
