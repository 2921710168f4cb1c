package cslex

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeAll(t *testing.T) {
	toks, err := lexer.ConsumeAll(LexString("main.cs", "{\n  break;\n}"))
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, TokenType(BlockOpen), toks[0].Type)
	assert.Equal(t, "break", toks[1].Value)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, "main.cs", toks[1].Pos.Filename)
	assert.Equal(t, TokenType(End), toks[2].Type)
	assert.Equal(t, 3, toks[3].Pos.Line)
	assert.True(t, toks[4].EOF())
}

func TestLexerKeepsReturningEOF(t *testing.T) {
	lex := LexBytes("", []byte("x"))
	_, err := lex.Next()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tok, err := lex.Next()
		require.NoError(t, err)
		assert.True(t, tok.EOF())
	}
}

func TestLexerError(t *testing.T) {
	lex, err := NewSlimLexer(nil).Lex("bad.cs", strings.NewReader("x;\n@"))
	require.NoError(t, err)

	_, err = lexer.ConsumeAll(lex)
	require.Error(t, err)

	perr, ok := err.(participle.Error)
	require.True(t, ok)
	assert.Equal(t, 2, perr.Position().Line)
	assert.Equal(t, "bad.cs", perr.Position().Filename)
	assert.Equal(t, "invalid expression: @", perr.Message())
}

func TestSymbols(t *testing.T) {
	symbols := DefaultDefinition.Symbols()
	assert.Equal(t, lexer.EOF, symbols["EOF"])
	assert.Equal(t, TokenType(Identifier), symbols["Ident"])
	assert.Len(t, symbols, len(kindNames))
}
