package cslex

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// MaxExpressionLength bounds the number of bytes a single token may take.
const MaxExpressionLength = 4096

// eofMark stands in for the character after the last one in the input, so a
// lexeme that needs a terminator can still end at end of input.
const eofMark = 0

type ScanErrorKind int

const (
	InvalidExpression ScanErrorKind = iota
	ExpressionTooLong
)

type ScanError struct {
	Kind     ScanErrorKind
	Filename string
	Line     int
	Text     string
}

func (e *ScanError) Message() string {
	switch e.Kind {
	case ExpressionTooLong:
		return fmt.Sprintf("expression exceeds maximum length (%d): %s", MaxExpressionLength, e.Text)
	default:
		return fmt.Sprintf("invalid expression: %s", e.Text)
	}
}

func (e *ScanError) Position() lexer.Position {
	return lexer.Position{Filename: e.Filename, Line: e.Line}
}

func (e *ScanError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message())
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message())
}

// Scanner turns a byte stream into tokens, one per call to Scan. Besides its
// reusable buffer it holds no state between calls.
type Scanner struct {
	// Filename is only used to annotate errors.
	Filename string

	rules *RuleSet
	buf   []byte
}

func NewScanner(rules *RuleSet) *Scanner {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Scanner{rules: rules, buf: make([]byte, 0, 64)}
}

// Scan reads the next token from src. line is the running line number of
// the input and is advanced past every newline consumed. The returned token
// carries the line its lexeme started on.
//
// A character read past the end of a boundary-terminated token is pushed back
// into src, so src must support a single UnreadByte after ReadByte.
func (s *Scanner) Scan(src io.ByteScanner, line *int) (Token, error) {
	buf := s.buf[:0]
	defer func() { s.buf = buf[:0] }()

	start := *line
	commented := false

	for {
		c, err := src.ReadByte()
		if err == io.EOF {
			if len(buf) == 0 {
				return Token{Kind: EOF, Line: *line}, nil
			}
			// end of input terminates the pending lexeme
			kind, ok := s.rules.Match(append(buf, eofMark))
			if ok && kind.Terminated() {
				return Token{Kind: kind, Line: start, Text: string(buf)}, nil
			}
			return Token{}, s.fail(InvalidExpression, start, buf)
		}
		if err != nil {
			return Token{}, err
		}

		if c == '\n' {
			*line++
		}

		if commented {
			if c == '\n' {
				commented = false
			}
			continue
		}

		if len(buf) == 0 {
			if c <= ' ' {
				continue
			}
			start = *line
		}

		if c == '/' && len(buf) > 0 && buf[len(buf)-1] == '/' && buf[0] != '"' {
			commented = true
			buf = buf[:len(buf)-1]
			continue
		}

		buf = append(buf, c)

		kind, ok := s.rules.Match(buf)
		if ok {
			text := buf
			switch {
			case kind == Directive:
				// the trailing space is part of the directive syntax only
				text = buf[:len(buf)-1]
			case kind.Terminated():
				text = buf[:len(buf)-1]
				if err := src.UnreadByte(); err != nil {
					return Token{}, err
				}
				if c == '\n' {
					*line--
				}
			}
			return Token{Kind: kind, Line: start, Text: string(text)}, nil
		}

		if len(buf) >= MaxExpressionLength {
			return Token{}, s.fail(ExpressionTooLong, start, buf)
		}
	}
}

func (s *Scanner) fail(kind ScanErrorKind, line int, buf []byte) *ScanError {
	text := string(buf)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return &ScanError{Kind: kind, Filename: s.Filename, Line: line, Text: text}
}
