package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cslim-lang/cslim/lib/hashtable"
	cslex "github.com/cslim-lang/cslim/lib/lexer"
	"github.com/cslim-lang/cslim/lib/symtable"
)

// MaxTokens is the largest number of tokens a single statement may hold.
const MaxTokens = 4096

const includedCapacity = 32

// Parser collects tokens until a statement terminator arrives and then
// classifies the buffered tokens as one statement. Block tokens are not
// buffered; they open and close scopes in the symbol table instead.
type Parser struct {
	// Filename is only used to annotate errors.
	Filename string

	tokens   []cslex.Token
	included *hashtable.Table[string]
}

func New() *Parser {
	return &Parser{
		tokens:   make([]cslex.Token, 0, 64),
		included: hashtable.New[string](includedCapacity, 0),
	}
}

// Reset drops any partially buffered statement.
func (p *Parser) Reset() {
	p.tokens = p.tokens[:0]
}

// Buffered returns the number of tokens waiting for a statement terminator.
func (p *Parser) Buffered() int {
	return len(p.tokens)
}

// IncludedCount returns the number of distinct paths named by #include.
func (p *Parser) IncludedCount() int {
	return p.included.Len()
}

// IncludedFiles returns the distinct #include paths in sorted order.
func (p *Parser) IncludedFiles() []string {
	paths := make([]string, 0, p.included.Len())
	for i := 0; i < p.included.Cap(); i++ {
		if path, ok := p.included.GetAt(i); ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// Parse feeds one token to the parser. It returns a nil statement and a nil
// error while a statement is still incomplete, and for statements that
// produce nothing (empty statements and directives).
func (p *Parser) Parse(tok cslex.Token, st *symtable.SymbolTable) (*Statement, error) {
	switch tok.Kind {
	case cslex.BlockOpen:
		if err := st.PushScope(); err != nil {
			return nil, p.errorf(ScopeOverflow, tok, err,
				"exceeded maximum number of nested scopes (%d)", symtable.MaxScopes)
		}
		return nil, nil
	case cslex.BlockClose:
		if err := st.PopScope(); err != nil {
			return nil, p.errorf(ScopeUnderflow, tok, err,
				"unexpected scope block closing statement, no scope to close")
		}
		return nil, nil
	}

	if len(p.tokens) >= MaxTokens {
		err := p.errorf(TooManyTokens, tok, nil,
			"too many tokens in one statement (max %d)", MaxTokens)
		p.Reset()
		return nil, err
	}
	p.tokens = append(p.tokens, tok)

	if tok.Kind != cslex.End {
		return nil, nil
	}
	defer p.Reset()

	count := len(p.tokens) - 1
	if count == 0 {
		return nil, nil
	}

	first := p.tokens[0]
	switch first.Kind {
	case cslex.Directive:
		return nil, p.directive(first, count)
	case cslex.Identifier:
		if first.Text == "break" {
			return p.breakStatement(first, count, st)
		}
		if count == 2 && p.tokens[1].Kind == cslex.Identifier {
			// declaration without initializer; not compiled yet
			return nil, nil
		}
	}
	return nil, p.errorf(UnknownStatement, first, nil, "unknown statement")
}

func (p *Parser) directive(first cslex.Token, count int) error {
	switch name := strings.TrimPrefix(first.Text, "#"); name {
	case "include":
		if count != 2 || p.tokens[1].Kind != cslex.StringLiteral {
			return p.errorf(MalformedDirective, first, nil,
				"invalid include statement (expected `#include \"path\";`)")
		}
		path := unquote(p.tokens[1].Text)
		if err := p.included.Add(hashtable.HashString(path), path); err != nil {
			return fmt.Errorf("include %q: %w", path, err)
		}
		return nil
	case "define":
		// #define identifier definition; accepted, no effect yet
		return nil
	default:
		return p.errorf(UnknownDirective, first, nil, "unknown directive %q", name)
	}
}

func (p *Parser) breakStatement(first cslex.Token, count int, st *symtable.SymbolTable) (*Statement, error) {
	switch count {
	case 1:
		return &Statement{Kind: Break}, nil
	case 2:
		label := p.tokens[1]
		if label.Kind != cslex.Identifier {
			return nil, p.errorf(InvalidBreak, first, nil,
				"invalid break statement (expected label identifier, ex: `break label;`)")
		}
		if st.Get(label.Text) == nil {
			return nil, p.errorf(UndefinedLabel, first, nil, "undefined label identifier %q", label.Text)
		}
		return &Statement{Kind: BreakLabel, Args: []string{label.Text}}, nil
	default:
		return nil, p.errorf(InvalidBreak, first, nil,
			"invalid break statement (expected `break;` or `break label;`)")
	}
}

// errorf builds a ParseError for the buffered statement, or for tok alone
// when nothing is buffered.
func (p *Parser) errorf(kind ErrorKind, tok cslex.Token, cause error, format string, args ...interface{}) *ParseError {
	toks := p.tokens
	if len(toks) == 0 {
		toks = []cslex.Token{tok}
	}
	return &ParseError{
		Kind:     kind,
		Filename: p.Filename,
		Line:     toks[0].Line,
		Text:     joinTokens(toks),
		Msg:      fmt.Sprintf(format, args...),
		Err:      cause,
	}
}

// unquote strips the surrounding quotes of a string literal.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
