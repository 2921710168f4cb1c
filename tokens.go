package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2/lexer"
	cslex "github.com/cslim-lang/cslim/lib/lexer"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "tokens",
		Usage:     "Print the token stream of a C-Slim file",
		Category:  "compile",
		ArgsUsage: "<file>",
		Action:    tokens,
	})
}

var kindColors = map[cslex.Kind]func(format string, a ...interface{}) string{
	cslex.IntLiteral:    color.CyanString,
	cslex.FloatLiteral:  color.CyanString,
	cslex.StringLiteral: color.GreenString,
	cslex.Identifier:    color.WhiteString,
	cslex.Directive:     color.MagentaString,
	cslex.Operator:      color.YellowString,
	cslex.Slash:         color.YellowString,
}

func tokenNames() map[lexer.TokenType]string {
	names := map[lexer.TokenType]string{}
	for name, typ := range cslex.SlimLexer.Symbols() {
		names[typ] = name
	}
	return names
}

func tokens(c *cli.Context) error {
	filename := c.Args().First()
	if filename == "" {
		return cli.Exit(color.RedString("Error: No file specified"), 1)
	}

	f, err := os.Open(filename)
	if err != nil {
		return cli.Exit(color.RedString("Error opening file: %s", err), 1)
	}
	defer f.Close()

	toks, err := lexer.ConsumeAll(cslex.Lex(filename, f))
	printTokens(c.App.Writer, toks)
	if err != nil {
		return cli.Exit(color.RedString("%s", err), 1)
	}
	return nil
}

func printTokens(w io.Writer, toks []lexer.Token) {
	names := tokenNames()
	for _, tok := range toks {
		if tok.EOF() {
			continue
		}
		name := names[tok.Type]
		paint := color.HiBlackString
		for kind, fn := range kindColors {
			if cslex.TokenType(kind) == tok.Type {
				paint = fn
				break
			}
		}
		fmt.Fprintf(w, "@%d %s %q\n", tok.Pos.Line, paint("%-7s", name), tok.Value)
	}
}
