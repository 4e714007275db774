package swiftparser

import "strings"

type TokenType int

const (
	NumberToken TokenType = iota + 1
	IdentifierToken
	SymbolToken

	StringBodyToken
	CommentBodyToken

	WhitespaceToken
	LinebreakToken

	StartOfScopeToken
	EndOfScopeToken

	// ErrorToken carries the offending source text; the tokenizer never fails,
	// malformed input just shows up as one of these in the stream.
	ErrorToken
)

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func (tt TokenType) GoString() string {
	return tokenToDescription[tt]
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := TokenType(1); tt <= ErrorToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	NumberToken:       "NumberToken",
	IdentifierToken:   "IdentifierToken",
	SymbolToken:       "SymbolToken",
	StringBodyToken:   "StringBodyToken",
	CommentBodyToken:  "CommentBodyToken",
	WhitespaceToken:   "WhitespaceToken",
	LinebreakToken:    "LinebreakToken",
	StartOfScopeToken: "StartOfScopeToken",
	EndOfScopeToken:   "EndOfScopeToken",
	ErrorToken:        "ErrorToken",
}

// Token is one lexical unit, carrying the exact source slice it was scanned
// from. Concatenating Value over a token stream reproduces the input
// (unless the stream contains an ErrorToken).
type Token struct {
	Type  TokenType
	Value string
}

func (t Token) IsWhitespace() bool {
	return t.Type == WhitespaceToken
}

func (t Token) IsLinebreak() bool {
	return t.Type == LinebreakToken
}

func (t Token) IsWhitespaceOrLinebreak() bool {
	return t.Type == WhitespaceToken || t.Type == LinebreakToken
}

func (t Token) IsWhitespaceOrComment() bool {
	switch t.Type {
	case WhitespaceToken, CommentBodyToken:
		return true
	case StartOfScopeToken:
		return t.Value == "/*" || t.Value == "//"
	case EndOfScopeToken:
		return t.Value == "*/"
	}
	return false
}

func (t Token) IsWhitespaceOrCommentOrLinebreak() bool {
	return t.Type == LinebreakToken || t.IsWhitespaceOrComment()
}

func (t Token) IsError() bool {
	return t.Type == ErrorToken
}

func (t Token) IsIdentifier() bool {
	return t.Type == IdentifierToken
}

func (t Token) IsStartOfScope() bool {
	return t.Type == StartOfScopeToken
}

func (t Token) IsEndOfScope() bool {
	return t.Type == EndOfScopeToken
}

// ClosesScopeFor reports whether the receiver terminates a scope opened by
// `scope` (a StartOfScopeToken), per the pairing table. A `<` scope accepts any
// symbol that merely begins with `>`; the tokenizer splits off the rest.
func (t Token) ClosesScopeFor(scope Token) bool {
	if scope.Type != StartOfScopeToken {
		return false
	}
	switch scope.Value {
	case "(":
		return t.Type == EndOfScopeToken && t.Value == ")"
	case "[":
		return t.Type == EndOfScopeToken && t.Value == "]"
	case "{":
		return t.Type == EndOfScopeToken && t.Value == "}"
	case ":":
		return t.Type == EndOfScopeToken &&
			(t.Value == "}" || t.Value == "case" || t.Value == "default")
	case "/*":
		return t.Type == EndOfScopeToken && t.Value == "*/"
	case "#if":
		return t.Type == EndOfScopeToken && t.Value == "#endif"
	case "\"":
		return t.Type == EndOfScopeToken && t.Value == "\""
	case "<":
		if t.Type == EndOfScopeToken {
			return t.Value == ">"
		}
		return t.Type == SymbolToken && strings.HasPrefix(t.Value, ">")
	case "//":
		return t.Type == LinebreakToken
	}
	return false
}
