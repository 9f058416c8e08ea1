package main

import (
	"os"

	"github.com/yndnr/vecmap-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
