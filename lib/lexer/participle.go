package cslex

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SlimLexer is a participle lexer backed by Scanner and the default rules.
var (
	SlimLexer lexer.Definition = &slimLexerDefinition{}

	// DefaultDefinition defines properties for the default lexer.
	DefaultDefinition = SlimLexer
)

// NewSlimLexer constructs a Definition that scans with the given rules. A nil
// RuleSet selects DefaultRules.
func NewSlimLexer(rules *RuleSet) lexer.Definition {
	return &slimLexerDefinition{rules: rules}
}

type slimLexerDefinition struct {
	rules *RuleSet
}

func (d *slimLexerDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	return lexWithRules(filename, r, d.rules), nil
}

func (d *slimLexerDefinition) Symbols() map[string]lexer.TokenType {
	symbols := make(map[string]lexer.TokenType, len(kindNames))
	for k, name := range kindNames {
		symbols[name] = TokenType(Kind(k))
	}
	return symbols
}

// TokenType maps a token kind onto participle's token types. EOF maps onto
// lexer.EOF so participle recognises the end of the stream.
func TokenType(k Kind) lexer.TokenType {
	if k == EOF {
		return lexer.EOF
	}
	return lexer.TokenType(k)
}

// slimLexer is a Lexer based on Scanner
type slimLexer struct {
	scanner  *Scanner
	src      io.ByteScanner
	filename string
	line     int
	done     bool
}

// Lex an io.Reader with the default C-Slim rules.
func Lex(filename string, r io.Reader) lexer.Lexer {
	return lexWithRules(filename, r, nil)
}

func lexWithRules(filename string, r io.Reader, rules *RuleSet) *slimLexer {
	src, ok := r.(io.ByteScanner)
	if !ok {
		src = bufio.NewReader(r)
	}
	scanner := NewScanner(rules)
	scanner.Filename = filename
	return &slimLexer{
		scanner:  scanner,
		src:      src,
		filename: filename,
		line:     1,
	}
}

// LexBytes returns a new default lexer over bytes.
func LexBytes(filename string, b []byte) lexer.Lexer {
	return Lex(filename, bytes.NewReader(b))
}

// LexString returns a new default lexer over a string.
func LexString(filename, s string) lexer.Lexer {
	return Lex(filename, strings.NewReader(s))
}

func (l *slimLexer) Next() (lexer.Token, error) {
	if l.done {
		return lexer.EOFToken(lexer.Position{Filename: l.filename, Line: l.line}), nil
	}
	tok, err := l.scanner.Scan(l.src, &l.line)
	if err != nil {
		if perr, ok := err.(participle.Error); ok {
			return lexer.Token{}, perr
		}
		return lexer.Token{}, participle.Errorf(lexer.Position{Filename: l.filename, Line: l.line}, "%s", err)
	}
	if tok.Kind == EOF {
		l.done = true
	}
	return lexer.Token{
		Type:  TokenType(tok.Kind),
		Value: tok.Text,
		Pos:   lexer.Position{Filename: l.filename, Line: tok.Line},
	}, nil
}
