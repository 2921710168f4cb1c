package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cslim-lang/cslim/lib/project"
	"github.com/cslim-lang/cslim/util"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new C-Slim project",
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "The name of the project",
			},
			&cli.StringFlag{
				Name:    "main",
				Aliases: []string{"m"},
				Usage:   "The main source file of the project",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept defaults and overwrite an existing cslim.yaml",
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return cli.Exit(color.RedString("Error creating project directory: %s", err), 1)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return cli.Exit(color.RedString("Error resolving project directory: %s", err), 1)
	}

	var conf project.Conf
	conf.CreateDefault(filepath.Base(abs))

	if c.String("name") != "" {
		conf.Name = c.String("name")
	} else if !c.Bool("yes") {
		conf.Name = util.PromptString("Project name", conf.Name)
	}
	if c.String("main") != "" {
		conf.Sources = []string{c.String("main")}
	}

	path := filepath.Join(dir, project.FileName)
	if err := conf.Save(path, c.Bool("yes")); err != nil {
		return cli.Exit(color.RedString("Error writing %s: %s", path, err), 1)
	}

	fmt.Fprintln(c.App.Writer, color.GreenString("Initialized project %s in %s", conf.Name, path))
	return nil
}
