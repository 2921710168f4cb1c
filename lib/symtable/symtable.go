package symtable

import (
	"errors"

	"github.com/cslim-lang/cslim/lib/hashtable"
)

// MaxScopes is the deepest allowed nesting of scopes.
const MaxScopes = 127

const scopeCapacity = 8

var (
	ErrScopeOverflow  = errors.New("symtable: too many nested scopes")
	ErrScopeUnderflow = errors.New("symtable: no scope to close")
)

type SymbolKind int

const (
	Var SymbolKind = iota
	Func
	Struct
)

func (k SymbolKind) String() string {
	switch k {
	case Var:
		return "var"
	case Func:
		return "func"
	case Struct:
		return "struct"
	}
	return "unknown"
}

type Symbol struct {
	Kind SymbolKind
	Name string
}

// SymbolTable is a stack of scopes, innermost last. Each scope is a hash
// table keyed by the djb2 hash of the symbol name.
type SymbolTable struct {
	scopes   []*hashtable.Table[*Symbol]
	maxScope int
}

func New() *SymbolTable {
	return &SymbolTable{}
}

// NewBounded returns a table whose scopes cannot grow past maxEntries slots.
// Adding to a full scope fails with hashtable.ErrFull.
func NewBounded(maxEntries int) *SymbolTable {
	return &SymbolTable{maxScope: maxEntries}
}

func (t *SymbolTable) Depth() int {
	return len(t.scopes)
}

func (t *SymbolTable) PushScope() error {
	if len(t.scopes) >= MaxScopes {
		return ErrScopeOverflow
	}
	t.scopes = append(t.scopes, hashtable.New[*Symbol](scopeCapacity, t.maxScope))
	return nil
}

func (t *SymbolTable) PopScope() error {
	n := len(t.scopes)
	if n == 0 {
		return ErrScopeUnderflow
	}
	t.scopes[n-1] = nil
	t.scopes = t.scopes[:n-1]
	return nil
}

// Add declares sym in the innermost scope. It does nothing when no scope is
// open.
func (t *SymbolTable) Add(sym *Symbol) error {
	n := len(t.scopes)
	if n == 0 {
		return nil
	}
	return t.scopes[n-1].Add(hashtable.HashString(sym.Name), sym)
}

// Get resolves name from the innermost scope outwards, so inner declarations
// shadow outer ones.
func (t *SymbolTable) Get(name string) *Symbol {
	key := hashtable.HashString(name)
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i].Get(key); ok {
			return sym
		}
	}
	return nil
}
