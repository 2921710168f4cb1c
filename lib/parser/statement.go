package parser

import (
	"fmt"
	"strings"
)

type StatementKind int

const (
	Break StatementKind = iota
	BreakLabel
	// VarDecl and FuncDecl are recognised shapes that the parser does not
	// produce yet.
	VarDecl
	FuncDecl
)

func (k StatementKind) String() string {
	switch k {
	case Break:
		return "break"
	case BreakLabel:
		return "break-label"
	case VarDecl:
		return "var-decl"
	case FuncDecl:
		return "func-decl"
	}
	return fmt.Sprintf("StatementKind(%d)", int(k))
}

// Statement is a validated sequence of tokens. Args holds the text of the
// tokens the statement refers to, such as the label of a break.
type Statement struct {
	Kind StatementKind
	Args []string
}

func (s *Statement) ArgCount() int {
	return len(s.Args)
}

func (s *Statement) String() string {
	if len(s.Args) == 0 {
		return s.Kind.String()
	}
	return s.Kind.String() + " " + strings.Join(s.Args, " ")
}
