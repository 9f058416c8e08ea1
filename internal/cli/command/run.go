package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/vecmap-go/internal/bench"
	"github.com/yndnr/vecmap-go/internal/cli/output"
	"github.com/yndnr/vecmap-go/internal/infra/shutdown"
	"github.com/yndnr/vecmap-go/internal/telemetry/logger"
	"github.com/yndnr/vecmap-go/internal/telemetry/metric"
)

// shutdownTimeout bounds the cleanup hooks after a run.
const shutdownTimeout = 5 * time.Second

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the benchmark and print results",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  "sizes",
				Usage: "Header counts per map (overrides bench.sizes)",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "Timed rounds per cell (overrides bench.rounds)",
			},
			&cli.StringSliceFlag{
				Name:  "contender",
				Usage: "Store to measure, repeatable (overrides bench.contenders)",
			},
			&cli.StringFlag{
				Name:  "value-kind",
				Usage: "Generated header values: ulid, static",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus text-format metrics to this file",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "Do not draw a progress bar on stderr",
			},
		},
		Action: runAction,
	}
}

// runOverrides maps the run flags that were set to their config keys.
func runOverrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	if c.IsSet("sizes") {
		m["bench.sizes"] = c.IntSlice("sizes")
	}
	if c.IsSet("rounds") {
		m["bench.rounds"] = c.Int("rounds")
	}
	if c.IsSet("contender") {
		m["bench.contenders"] = c.StringSlice("contender")
	}
	if c.IsSet("value-kind") {
		m["bench.value_kind"] = c.String("value-kind")
	}
	if c.IsSet("metrics-file") {
		m["output.metrics_file"] = c.String("metrics-file")
	}
	return m
}

func runAction(c *cli.Context) error {
	cfg, err := loadConfig(c, runOverrides(c))
	if err != nil {
		return err
	}

	log, err := newLogger(c, cfg)
	if err != nil {
		return err
	}

	ctx, stop := shutdown.WithSignals(c.Context)
	defer stop()

	runID := ulid.Make().String()
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), runID)

	reg := metric.NewRegistry()
	h := shutdown.NewHandler(shutdownTimeout)
	if path := cfg.Output.MetricsFile; path != "" {
		h.OnShutdown(func(context.Context) error {
			if err := reg.WriteFile(path); err != nil {
				return err
			}
			log.Info("metrics written", "run_id", runID, "path", path)
			return nil
		})
	}

	var opts []bench.RunnerOption
	var bar *output.ProgressBar
	if !c.Bool("no-progress") {
		total := len(cfg.Bench.Contenders) * len(cfg.Bench.Sizes) * len(bench.Operations())
		bar = output.NewProgressBar(errWriter(c), "bench", total)
		opts = append(opts, bench.WithResultHook(func(bench.Result) {
			bar.Increment(1)
		}))
	}

	log.Info("benchmark started",
		"run_id", runID,
		"contenders", cfg.Bench.Contenders,
		"sizes", cfg.Bench.Sizes,
		"rounds", cfg.Bench.Rounds,
	)

	results, runErr := bench.NewRunner(cfg.Bench, reg, opts...).Run(ctx)
	if bar != nil {
		if runErr == nil {
			bar.Finish()
		} else {
			fmt.Fprintln(errWriter(c))
		}
	}

	// Partial results are still worth printing after an interrupt.
	if len(results) > 0 || runErr == nil {
		if err := output.NewFormatter(output.Format(cfg.Output.Format)).Format(outWriter(c), results); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("format results: %w", err))
		}
	}

	if err := h.Shutdown(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown: %w", err))
	}

	if runErr != nil {
		return fmt.Errorf("run benchmark: %w", runErr)
	}
	return nil
}
