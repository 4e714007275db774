package swiftparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenPredicates(t *testing.T) {
	assert.True(t, Token{WhitespaceToken, " "}.IsWhitespace())
	assert.False(t, Token{LinebreakToken, "\n"}.IsWhitespace())
	assert.True(t, Token{LinebreakToken, "\n"}.IsLinebreak())
	assert.True(t, Token{WhitespaceToken, "\t"}.IsWhitespaceOrLinebreak())
	assert.True(t, Token{LinebreakToken, "\r\n"}.IsWhitespaceOrLinebreak())
	assert.False(t, Token{SymbolToken, "+"}.IsWhitespaceOrLinebreak())

	assert.True(t, Token{CommentBodyToken, "x"}.IsWhitespaceOrComment())
	assert.True(t, Token{StartOfScopeToken, "//"}.IsWhitespaceOrComment())
	assert.True(t, Token{StartOfScopeToken, "/*"}.IsWhitespaceOrComment())
	assert.True(t, Token{EndOfScopeToken, "*/"}.IsWhitespaceOrComment())
	assert.False(t, Token{StartOfScopeToken, "{"}.IsWhitespaceOrComment())
	assert.False(t, Token{LinebreakToken, "\n"}.IsWhitespaceOrComment())
	assert.True(t, Token{LinebreakToken, "\n"}.IsWhitespaceOrCommentOrLinebreak())

	assert.True(t, Token{ErrorToken, ""}.IsError())
	assert.True(t, Token{IdentifierToken, "foo"}.IsIdentifier())
	assert.True(t, Token{StartOfScopeToken, "("}.IsStartOfScope())
	assert.True(t, Token{EndOfScopeToken, ")"}.IsEndOfScope())
}

func TestClosesScopeFor(t *testing.T) {
	closes := func(tok, scope Token) bool {
		return tok.ClosesScopeFor(scope)
	}

	start := func(s string) Token { return Token{StartOfScopeToken, s} }
	end := func(s string) Token { return Token{EndOfScopeToken, s} }

	assert.True(t, closes(end(")"), start("(")))
	assert.True(t, closes(end("]"), start("[")))
	assert.True(t, closes(end("}"), start("{")))
	assert.False(t, closes(end(")"), start("[")))
	assert.False(t, closes(end("}"), start("(")))

	// case bodies close on }, case and default
	assert.True(t, closes(end("}"), start(":")))
	assert.True(t, closes(end("case"), start(":")))
	assert.True(t, closes(end("default"), start(":")))
	assert.False(t, closes(Token{SymbolToken, ":"}, start(":")))

	assert.True(t, closes(end("*/"), start("/*")))
	assert.True(t, closes(end("#endif"), start("#if")))
	assert.True(t, closes(end(`"`), start(`"`)))

	// a generic accepts any symbol that just begins with >
	assert.True(t, closes(Token{SymbolToken, ">"}, start("<")))
	assert.True(t, closes(Token{SymbolToken, ">>"}, start("<")))
	assert.True(t, closes(Token{SymbolToken, ">="}, start("<")))
	assert.True(t, closes(end(">"), start("<")))
	assert.False(t, closes(Token{SymbolToken, "<"}, start("<")))

	// line comments close on any linebreak
	assert.True(t, closes(Token{LinebreakToken, "\n"}, start("//")))
	assert.True(t, closes(Token{LinebreakToken, "\r\n"}, start("//")))
	assert.False(t, closes(Token{WhitespaceToken, " "}, start("//")))

	// nothing closes a non-scope
	assert.False(t, closes(end(")"), Token{SymbolToken, "("}))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "NumberToken", NumberToken.String())
	assert.Equal(t, "EndOfScopeToken", EndOfScopeToken.GoString())
}
