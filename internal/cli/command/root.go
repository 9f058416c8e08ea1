package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vecmap-go/internal/bench"
	"github.com/yndnr/vecmap-go/internal/infra/buildinfo"
	"github.com/yndnr/vecmap-go/internal/infra/confloader"
	"github.com/yndnr/vecmap-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "vecmap-bench",
		Usage:   "Compare the sequential header map against hashed maps",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			RunCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"VECMAP_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config    string
	LogLevel  string
	LogFormat string
	Output    string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:    c.String("config"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
		Output:    c.String("output"),
	}
}

// overrides maps explicitly set flags to their config keys.
func (f *GlobalFlags) overrides() map[string]any {
	m := make(map[string]any)
	if f.LogLevel != "" {
		m["log.level"] = f.LogLevel
	}
	if f.LogFormat != "" {
		m["log.format"] = f.LogFormat
	}
	if f.Output != "" {
		m["output.format"] = f.Output
	}
	return m
}

// loadConfig builds the effective configuration for a command. extra
// holds command-specific overrides and wins over the global ones.
func loadConfig(c *cli.Context, extra map[string]any) (*bench.Config, error) {
	cfg, _, err := load(c, extra)
	return cfg, err
}

// load is loadConfig that also hands back the loader, whose key map
// holds only what the file, environment and flags set.
func load(c *cli.Context, extra map[string]any) (*bench.Config, *confloader.Loader, error) {
	flags := ParseGlobalFlags(c)

	overrides := flags.overrides()
	for k, v := range extra {
		overrides[k] = v
	}

	cfg := bench.DefaultConfig()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(flags.Config),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(&cfg); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, loader, nil
}

// newLogger builds the command logger. Logs go to the app's error writer
// so stdout carries only results.
func newLogger(c *cli.Context, cfg *bench.Config) (logger.Logger, error) {
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	})
}

func outWriter(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return io.Discard
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return io.Discard
}

// PrintError prints an error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
