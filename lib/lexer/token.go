package cslex

import "fmt"

type Kind int

// Kinds up to and including Identifier are boundary terminated: their rule
// only matches once one extra character past the lexeme has been read.
const (
	IntLiteral Kind = iota
	FloatLiteral
	Slash
	Identifier

	End
	EOF
	StringLiteral
	ListSeparator
	GroupOpen
	GroupClose
	BlockOpen
	BlockClose
	ListOpen
	ListClose
	Operator
	Directive
)

var kindNames = [...]string{
	IntLiteral:    "Int",
	FloatLiteral:  "Float",
	Slash:         "Slash",
	Identifier:    "Ident",
	End:           "End",
	EOF:           "EOF",
	StringLiteral: "String",
	ListSeparator: "ListSeparator",
	GroupOpen:     "GroupOpen",
	GroupClose:    "GroupClose",
	BlockOpen:     "BlockOpen",
	BlockClose:    "BlockClose",
	ListOpen:      "ListOpen",
	ListClose:     "ListClose",
	Operator:      "Operator",
	Directive:     "Directive",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Terminated reports whether tokens of this kind end with a character that
// belongs to the next token.
func (k Kind) Terminated() bool {
	return k >= IntLiteral && k <= Identifier
}

type Token struct {
	Kind Kind
	Line int
	Text string
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("@%d [%s]", t.Line, t.Kind)
	}
	return fmt.Sprintf("@%d [%s] %s", t.Line, t.Kind, t.Text)
}
