package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/vecmap-go/internal/cli/output"
	"github.com/yndnr/vecmap-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			info := buildinfo.Get()

			format := output.Format(c.String("output"))
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(outWriter(c), info)
			}

			t := &output.Table{}
			t.AddRow("Version:", info.Version)
			t.AddRow("Commit:", info.Commit)
			t.AddRow("Built:", info.BuildTime)
			t.AddRow("Go:", info.GoVersion)
			return t.RenderWithOptions(outWriter(c), true)
		},
	}
}
