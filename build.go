package main

import (
	"fmt"
	"os"

	"github.com/cslim-lang/cslim/lib/compiler"
	"github.com/cslim-lang/cslim/lib/logger"
	"github.com/cslim-lang/cslim/lib/project"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "build",
		Usage:     "Compile C-Slim source files",
		Category:  "compile",
		ArgsUsage: "[file1 file2 ...]",
		Description: "Scans and parses every input file, continuing past files that fail." +
			"\nWithout file arguments the sources listed in cslim.yaml are compiled.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "The directory containing cslim.yaml",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print a summary of the compiled files",
			},
			&cli.BoolFlag{
				Name:  "trace-tokens",
				Usage: "Log every scanned token",
			},
			&cli.BoolFlag{
				Name:  "trace-statements",
				Usage: "Log every parsed statement",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Minimum log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write JSON logs to a rotated file instead of stderr",
			},
		},
		Action: build,
	})
}

// loadConf reads cslim.yaml from the --config directory or the working
// directory. A missing file is only an error when --config was given.
func loadConf(c *cli.Context) (project.Conf, error) {
	dir := c.String("config")
	explicit := dir != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return project.Conf{}, err
		}
		dir = cwd
	}

	conf, err := project.GetConf(dir)
	if err != nil {
		if project.IsNotFound(err) && !explicit {
			return project.Conf{Log: *logger.DefaultConfig()}, nil
		}
		return project.Conf{}, err
	}
	return conf, nil
}

func applyFlags(c *cli.Context, conf *project.Conf) {
	if c.IsSet("verbose") {
		conf.Verbose = c.Bool("verbose")
	}
	if c.IsSet("trace-tokens") {
		conf.Trace.Tokens = c.Bool("trace-tokens")
	}
	if c.IsSet("trace-statements") {
		conf.Trace.Statements = c.Bool("trace-statements")
	}
	if c.IsSet("log-file") {
		conf.Log.FileName = c.String("log-file")
	}
	if c.IsSet("log-level") {
		conf.Log.Level = c.String("log-level")
	} else if conf.Trace.Tokens || conf.Trace.Statements {
		conf.Log.Level = "DEBUG"
	}
}

func build(c *cli.Context) error {
	conf, err := loadConf(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	applyFlags(c, &conf)

	files := c.Args().Slice()
	if len(files) == 0 {
		files = conf.SourcePaths()
	}
	if len(files) == 0 {
		return cli.Exit(color.RedString("Error: No input files specified"), 1)
	}

	log, err := logger.New(&conf.Log)
	if err != nil {
		return cli.Exit(color.RedString("Error creating logger: %s", err), 1)
	}
	defer log.Sync()

	comp := compiler.NewCompiler(compiler.Options{
		TraceTokens:     conf.Trace.Tokens,
		TraceStatements: conf.Trace.Statements,
	}, log)

	res := comp.CompileFiles(files)
	for _, err := range res.Errors {
		fmt.Fprintln(c.App.ErrWriter, color.RedString("%s", err))
	}

	if res.OK() {
		if conf.Verbose {
			fmt.Fprintln(c.App.Writer, color.GreenString("SUCCESS! Compiled all %d input files", res.Total))
		}
		return nil
	}

	msg := ""
	if conf.Verbose {
		msg = color.RedString("FAILURE! Successfully compiled %d out of %d input files", res.Compiled, res.Total)
	}
	return cli.Exit(msg, 1)
}
