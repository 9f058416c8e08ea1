package command

import (
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vecmap-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "sources",
						Usage: "Print only the keys set by the file, environment or flags",
					},
				},
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration sources",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, loader, err := load(c, nil)
	if err != nil {
		return err
	}

	format := output.Format(cfg.Output.Format)
	if c.Bool("sources") {
		return showSources(c, format, loader.All())
	}

	// A table has no shape for nested config; show YAML instead.
	if format == output.FormatTable {
		format = output.FormatYAML
	}
	return output.NewFormatter(format).Format(outWriter(c), cfg)
}

// showSources prints the flat dotted keys that some source set, sorted.
func showSources(c *cli.Context, format output.Format, set map[string]any) error {
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(outWriter(c), set)
	}

	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, key := range slices.Sorted(maps.Keys(set)) {
		t.AddRow(key, fmt.Sprint(set[key]))
	}
	return output.NewFormatter(format).Format(outWriter(c), t)
}

func configValidate(c *cli.Context) error {
	if _, err := loadConfig(c, nil); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	source := "defaults and environment"
	if path := c.String("config"); path != "" {
		source = path
	}
	fmt.Fprintf(outWriter(c), "Configuration OK (%s)\n", source)
	return nil
}
