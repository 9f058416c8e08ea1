// Package shutdown stops a benchmark run cleanly.
//
// WithSignals derives a context that is canceled on SIGINT or SIGTERM, so
// the runner stops between rounds. A Handler collects cleanup hooks, such
// as exporting the metrics gathered so far, and runs them once when the
// command finishes, interrupted or not.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return flush(ctx) })
//	defer h.Shutdown()
package shutdown
