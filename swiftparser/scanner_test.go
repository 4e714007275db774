package swiftparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRawToken(t *testing.T) {
	test := func(input string, expectedType TokenType, expected string) func(*testing.T) {
		return func(t *testing.T) {
			s := &scanner{input: input}
			tok := s.nextRawToken()
			assert.Equal(t, expectedType, tok.Type)
			assert.Equal(t, expected, tok.Value)
		}
	}

	t.Run("", test("    ", WhitespaceToken, "    "))
	t.Run("", test("  \t a", WhitespaceToken, "  \t "))
	t.Run("", test("\vx", WhitespaceToken, "\v"))
	t.Run("", test("\u00a0x", WhitespaceToken, "\u00a0")) // no-break space is Zs

	t.Run("", test("\n", LinebreakToken, "\n"))
	t.Run("", test("\r", LinebreakToken, "\r"))
	t.Run("", test("\r\nx", LinebreakToken, "\r\n"))

	t.Run("", test("123", NumberToken, "123"))
	t.Run("", test("123 ", NumberToken, "123"))
	t.Run("", test("1_000_000", NumberToken, "1_000_000"))
	t.Run("", test("3.14159", NumberToken, "3.14159"))
	t.Run("", test("1.foo", NumberToken, "1"))
	t.Run("", test("6.02e23", NumberToken, "6.02e23"))
	t.Run("", test("1e-3+x", NumberToken, "1e-3"))
	t.Run("", test("1E+3", NumberToken, "1E+3"))
	t.Run("", test("1eX", NumberToken, "1")) // exponent needs a digit
	t.Run("", test("0xFF", NumberToken, "0xFF"))
	t.Run("", test("0xde_ad", NumberToken, "0xde_ad"))
	t.Run("", test("0x1p-2", NumberToken, "0x1p-2"))
	t.Run("", test("0b1010", NumberToken, "0b1010"))
	t.Run("", test("0b1_0", NumberToken, "0b1_0"))
	t.Run("", test("0o777", NumberToken, "0o777"))
	// a bare radix prefix poisons the rest of the input
	t.Run("", test("0x rest", ErrorToken, "0x rest"))
	t.Run("", test("0b2", ErrorToken, "0b2"))
	t.Run("", test("0o9 x", ErrorToken, "0o9 x"))

	t.Run("", test("abc", IdentifierToken, "abc"))
	t.Run("", test("_private", IdentifierToken, "_private"))
	t.Run("", test("$0", IdentifierToken, "$0"))
	t.Run("", test("café au lait", IdentifierToken, "café"))
	t.Run("", test("@objc func", IdentifierToken, "@objc"))
	t.Run("", test("#available(...)", IdentifierToken, "#available"))
	t.Run("", test("#if DEBUG", StartOfScopeToken, "#if"))
	t.Run("", test("#endif", EndOfScopeToken, "#endif"))
	t.Run("", test("`class` =", IdentifierToken, "`class`"))
	// missing closing quote restores the checkpoint; nothing else matches
	t.Run("", test("`class =", ErrorToken, "`class ="))

	t.Run("", test("+", SymbolToken, "+"))
	t.Run("", test("->", SymbolToken, "->"))
	t.Run("", test("==", SymbolToken, "=="))
	t.Run("", test("...x", SymbolToken, "..."))
	t.Run("", test("..<5", SymbolToken, "..<"))
	t.Run("", test("?.bar", SymbolToken, "?"))
	t.Run("", test(">>=", SymbolToken, ">>="))
	t.Run("", test("÷", SymbolToken, "÷"))
	t.Run("", test("/ 2", SymbolToken, "/"))
	t.Run("", test("<<", SymbolToken, "<<"))
	t.Run("", test("<Int>", StartOfScopeToken, "<"))
	t.Run("", test("/* c */", StartOfScopeToken, "/*"))
	t.Run("", test("// c", StartOfScopeToken, "//"))

	t.Run("", test(":", SymbolToken, ":"))
	t.Run("", test(";", SymbolToken, ";"))
	t.Run("", test(",", SymbolToken, ","))
	t.Run("", test("(", StartOfScopeToken, "("))
	t.Run("", test("[", StartOfScopeToken, "["))
	t.Run("", test("{", StartOfScopeToken, "{"))
	t.Run("", test("\"s\"", StartOfScopeToken, "\""))
	t.Run("", test(")", EndOfScopeToken, ")"))
	t.Run("", test("]", EndOfScopeToken, "]"))
	t.Run("", test("}", EndOfScopeToken, "}"))
}

// a comment opener cuts an operator run short and is returned by the next call
func TestOperatorCommentPushback(t *testing.T) {
	s := &scanner{input: "+//x"}
	tok := s.nextRawToken()
	assert.Equal(t, Token{SymbolToken, "+"}, tok)
	tok = s.nextRawToken()
	assert.Equal(t, Token{StartOfScopeToken, "//"}, tok)

	s = &scanner{input: "*/* c"}
	assert.Equal(t, Token{SymbolToken, "*"}, s.nextRawToken())
	assert.Equal(t, Token{StartOfScopeToken, "/*"}, s.nextRawToken())
}

func TestScannerCheckpointRestore(t *testing.T) {
	s := scanner{input: "abc def"}
	checkpoint := s
	s.consumeWhile(func(r rune) bool { return r != ' ' })
	assert.Equal(t, 3, s.pos)
	s = checkpoint
	assert.Equal(t, 0, s.pos)

	r, ok := s.peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, s.pos, "peek must not consume")

	assert.True(t, s.consumeIfEq('a'))
	assert.False(t, s.consumeIfEq('a'))
	word := s.consumeHeadTail(isIdentifierHead, isIdentifierTail)
	assert.Equal(t, "bc", word)
}
