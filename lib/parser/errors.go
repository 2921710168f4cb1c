package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	cslex "github.com/cslim-lang/cslim/lib/lexer"
)

type ErrorKind int

const (
	TooManyTokens ErrorKind = iota
	ScopeOverflow
	ScopeUnderflow
	MalformedDirective
	UnknownDirective
	InvalidBreak
	UndefinedLabel
	UnknownStatement
)

func (k ErrorKind) String() string {
	switch k {
	case TooManyTokens:
		return "too many tokens"
	case ScopeOverflow:
		return "scope overflow"
	case ScopeUnderflow:
		return "scope underflow"
	case MalformedDirective:
		return "malformed directive"
	case UnknownDirective:
		return "unknown directive"
	case InvalidBreak:
		return "invalid break"
	case UndefinedLabel:
		return "undefined label"
	case UnknownStatement:
		return "unknown statement"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports a statement the parser could not accept. Line and Text
// describe the offending statement as rebuilt from its tokens.
type ParseError struct {
	Kind     ErrorKind
	Filename string
	Line     int
	Text     string
	Msg      string
	Err      error
}

func (e *ParseError) Message() string {
	return e.Msg
}

func (e *ParseError) Position() lexer.Position {
	return lexer.Position{Filename: e.Filename, Line: e.Line}
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Msg, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.Filename, e.Line, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// joinTokens rebuilds a source line from token text, one space between
// tokens.
func joinTokens(toks []cslex.Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
