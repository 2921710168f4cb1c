package compiler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	cslex "github.com/cslim-lang/cslim/lib/lexer"
	"github.com/cslim-lang/cslim/lib/parser"
	"github.com/cslim-lang/cslim/lib/symtable"
	"go.uber.org/zap"
)

type Options struct {
	// TraceTokens logs every scanned token at debug level.
	TraceTokens bool
	// TraceStatements logs every parsed statement at debug level.
	TraceStatements bool
}

// Compiler drives the scanner and parser over source files. The symbol table
// and the set of included files are shared by every file it compiles.
type Compiler struct {
	SymTable *symtable.SymbolTable
	Scanner  *cslex.Scanner
	Parser   *parser.Parser
	Options  Options
	Log      *zap.Logger

	// OnStatement, if set, is called with every statement produced.
	OnStatement func(file string, stmt *parser.Statement)
}

func NewCompiler(opts Options, log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{
		SymTable: symtable.New(),
		Scanner:  cslex.NewScanner(cslex.DefaultRules()),
		Parser:   parser.New(),
		Options:  opts,
		Log:      log,
	}
}

// Compile processes one source file. It stops at the first scan or parse
// error. Scopes the file left open and any unterminated statement are
// discarded before returning, so the next file starts from a clean state.
func (c *Compiler) Compile(name string, r io.Reader) error {
	src, ok := r.(io.ByteScanner)
	if !ok {
		src = bufio.NewReader(r)
	}
	c.Scanner.Filename = name
	c.Parser.Filename = name

	log := c.Log.With(zap.String("file", name))
	depth := c.SymTable.Depth()
	defer c.unwind(depth)

	line := 1
	for {
		tok, err := c.Scanner.Scan(src, &line)
		if err != nil {
			var serr *cslex.ScanError
			if errors.As(err, &serr) {
				return err
			}
			return fmt.Errorf("%s: read: %w", name, err)
		}
		if tok.Kind == cslex.EOF {
			if n := c.Parser.Buffered(); n > 0 {
				log.Warn("unterminated statement at end of file", zap.Int("tokens", n))
			}
			if open := c.SymTable.Depth() - depth; open > 0 {
				log.Warn("unclosed scopes at end of file", zap.Int("scopes", open))
			}
			return nil
		}

		if c.Options.TraceTokens {
			log.Debug("token",
				zap.Int("line", tok.Line),
				zap.Stringer("kind", tok.Kind),
				zap.String("text", tok.Text))
		}

		stmt, err := c.Parser.Parse(tok, c.SymTable)
		if err != nil {
			return err
		}
		if stmt == nil {
			continue
		}
		if c.Options.TraceStatements {
			log.Debug("statement",
				zap.Int("line", line),
				zap.Stringer("kind", stmt.Kind),
				zap.Strings("args", stmt.Args))
		}
		if c.OnStatement != nil {
			c.OnStatement(name, stmt)
		}
	}
}

func (c *Compiler) unwind(depth int) {
	c.Parser.Reset()
	for c.SymTable.Depth() > depth {
		if err := c.SymTable.PopScope(); err != nil {
			return
		}
	}
}

func (c *Compiler) CompileFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	return c.Compile(path, bufio.NewReader(f))
}

type Result struct {
	Total    int
	Compiled int
	Errors   []error
}

func (r Result) OK() bool {
	return r.Compiled == r.Total
}

// CompileFiles compiles every path in order. A failing file does not stop the
// files after it.
func (c *Compiler) CompileFiles(paths []string) Result {
	res := Result{Total: len(paths)}
	for _, path := range paths {
		if err := c.CompileFile(path); err != nil {
			c.Log.Error("compile failed", zap.String("file", path), zap.Error(err))
			res.Errors = append(res.Errors, err)
			continue
		}
		c.Log.Info("compiled", zap.String("file", path))
		res.Compiled++
	}
	return res
}
