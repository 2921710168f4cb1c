package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

const version = "0.2.3"

var commands []*cli.Command

func newApp() *cli.App {
	return &cli.App{
		Name:                   "cslim",
		Usage:                  "A front end for the C-Slim language",
		Version:                version,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Commands:               append([]*cli.Command(nil), commands...),
	}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		os.Exit(1)
	}
}
