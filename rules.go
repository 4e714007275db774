package swiftfmt

import (
	"sort"
	"strings"

	"github.com/swiftfmt/swiftfmt/swiftparser"
)

// Rule is one rewrite pass over a Formatter. Rules must be idempotent in
// isolation; the engine handles convergence of the composition.
type Rule struct {
	Name  string
	Apply func(*Formatter)
}

// DefaultRules is the standard pipeline, in application order.
var DefaultRules = []Rule{
	FileHeader,
	SortedImports,
	Braces,
	Semicolons,
	Indent,
	TrailingSpace,
	ConsecutiveBlankLines,
	LinebreakAtEndOfFile,
}

// FileHeader replaces whatever leading comment the file has with the header
// text from the options. With FileHeaderIgnore (the default, and pinned by
// the engine after round one) it does nothing.
var FileHeader = Rule{
	Name: "fileHeader",
	Apply: func(f *Formatter) {
		header := f.Options().FileHeader
		if header == "" || header == FileHeaderIgnore {
			return
		}
		want := swiftparser.Tokenize(strings.TrimRight(header, "\r\n") + "\n\n")
		end := 0
		for end < f.Len() && f.Token(end).IsWhitespaceOrCommentOrLinebreak() {
			end++
		}
		if tokensEqual(f.tokens[:end], want) {
			return
		}
		f.RemoveRange(0, end)
		f.InsertAll(0, want)
	},
}

type importLine struct {
	tokens []swiftparser.Token
	name   string
}

// SortedImports sorts runs of consecutive import lines alphabetically by
// module path. Anything that isn't a plain `import Some.Module` line ends the
// run.
var SortedImports = Rule{
	Name: "sortedImports",
	Apply: func(f *Formatter) {
		toks := f.tokens
		out := make([]swiftparser.Token, 0, len(toks))
		i := 0
		for i < len(toks) {
			lines, seps, next, ok := scanImportRun(toks, i)
			if !ok {
				// copy the rest of this line verbatim
				j := i
				for j < len(toks) && toks[j].Type != swiftparser.LinebreakToken {
					j++
				}
				if j < len(toks) {
					j++
				}
				out = append(out, toks[i:j]...)
				i = j
				continue
			}
			sort.SliceStable(lines, func(a, b int) bool { return lines[a].name < lines[b].name })
			for k, ln := range lines {
				out = append(out, ln.tokens...)
				if k < len(seps) {
					out = append(out, seps[k])
				}
			}
			i = next
		}
		f.tokens = out
	},
}

// scanImportRun collects consecutive import lines starting at a line start,
// along with the linebreak tokens separating them. ok is false unless there
// are at least two lines worth reordering.
func scanImportRun(toks []swiftparser.Token, start int) (lines []importLine, seps []swiftparser.Token, next int, ok bool) {
	i := start
	for {
		lineToks, name, end, lineOK := scanImportLine(toks, i)
		if !lineOK {
			break
		}
		lines = append(lines, importLine{lineToks, name})
		i = end
		if i < len(toks) && toks[i].Type == swiftparser.LinebreakToken {
			seps = append(seps, toks[i])
			i++
		} else {
			break
		}
	}
	if len(lines) < 2 {
		return nil, nil, 0, false
	}
	return lines, seps, i, true
}

// scanImportLine matches [whitespace] "import" whitespace Name(.Name)*
// [whitespace] up to a linebreak or end of input.
func scanImportLine(toks []swiftparser.Token, i int) (lineToks []swiftparser.Token, name string, end int, ok bool) {
	j := i
	if j < len(toks) && toks[j].IsWhitespace() {
		j++
	}
	if j >= len(toks) || toks[j] != (swiftparser.Token{Type: swiftparser.IdentifierToken, Value: "import"}) {
		return nil, "", 0, false
	}
	j++
	if j >= len(toks) || !toks[j].IsWhitespace() {
		return nil, "", 0, false
	}
	j++
	if j >= len(toks) || !toks[j].IsIdentifier() {
		return nil, "", 0, false
	}
	name = toks[j].Value
	j++
	for j+1 < len(toks) &&
		toks[j] == (swiftparser.Token{Type: swiftparser.SymbolToken, Value: "."}) &&
		toks[j+1].IsIdentifier() {
		name += "." + toks[j+1].Value
		j += 2
	}
	if j < len(toks) && toks[j].IsWhitespace() {
		j++
	}
	if j < len(toks) && toks[j].Type != swiftparser.LinebreakToken {
		return nil, "", 0, false
	}
	return toks[i:j], name, j, true
}

// Braces moves an opening brace that starts its own line up to the end of the
// previous line.
var Braces = Rule{
	Name: "braces",
	Apply: func(f *Formatter) {
		for i := 0; i < f.Len(); i++ {
			if f.Token(i) != (swiftparser.Token{Type: swiftparser.StartOfScopeToken, Value: "{"}) {
				continue
			}
			j := i - 1
			if j >= 0 && f.Token(j).IsWhitespace() {
				j--
			}
			if j < 0 || !f.Token(j).IsLinebreak() {
				continue
			}
			k := j - 1
			if k >= 0 && f.Token(k).IsWhitespace() {
				k--
			}
			if k < 0 {
				continue
			}
			prev := f.Token(k)
			// never drag a brace into a trailing comment or past a blank line
			if prev.IsWhitespaceOrCommentOrLinebreak() || prev.IsStartOfScope() {
				continue
			}
			f.RemoveRange(k+1, i)
			f.Insert(k+1, swiftparser.Token{Type: swiftparser.WhitespaceToken, Value: " "})
			i = k + 2
		}
	},
}

// Semicolons drops semicolons at end of line or end of file.
var Semicolons = Rule{
	Name: "semicolons",
	Apply: func(f *Formatter) {
		for i := f.Len() - 1; i >= 0; i-- {
			if f.Token(i) != (swiftparser.Token{Type: swiftparser.SymbolToken, Value: ";"}) {
				continue
			}
			j := i + 1
			if j < f.Len() && f.Token(j).IsWhitespace() {
				j++
			}
			if j >= f.Len() || f.Token(j).IsLinebreak() {
				f.Remove(i)
			}
		}
	},
}

type indentScope struct {
	tok     swiftparser.Token
	counted bool
}

// Indent rewrites the leading whitespace of every line from the scope nesting
// at that point. Switch braces don't indent their labels; the case-body
// scopes do. Lines inside block comments and string literals are left alone.
var Indent = Rule{
	Name: "indent",
	Apply: func(f *Formatter) {
		unit := f.Options().Indent
		if unit == "" {
			unit = "    "
		}
		var stack []indentScope
		depth := 0
		for i := 0; i < f.Len(); i++ {
			tok := f.Token(i)
			switch tok.Type {
			case swiftparser.StartOfScopeToken:
				counted := false
				switch tok.Value {
				case "(", "[", ":":
					counted = true
				case "{":
					counted = !isSwitchBrace(f, i)
				}
				stack = append(stack, indentScope{tok, counted})
				if counted {
					depth++
				}
			case swiftparser.EndOfScopeToken:
				depth -= popClosedScopes(&stack, tok)
			case swiftparser.LinebreakToken:
				depth -= popClosedScopes(&stack, tok) // ends any // scope
				if len(stack) > 0 {
					switch stack[len(stack)-1].tok.Value {
					case "/*", "\"":
						continue
					}
				}
				i += reindentLine(f, i, depth, stack, unit)
			}
		}
	},
}

// popClosedScopes pops the scopes tok closes and returns how many of them
// counted towards the indent. A '}' that ends a case body pops the switch
// brace with it.
func popClosedScopes(stack *[]indentScope, tok swiftparser.Token) int {
	s := *stack
	if len(s) == 0 || !tok.ClosesScopeFor(s[len(s)-1].tok) {
		return 0
	}
	delta := 0
	top := s[len(s)-1]
	s = s[:len(s)-1]
	if top.counted {
		delta++
	}
	if tok.Value == "}" && top.tok.Value == ":" && len(s) > 0 && s[len(s)-1].tok.Value == "{" {
		if s[len(s)-1].counted {
			delta++
		}
		s = s[:len(s)-1]
	}
	*stack = s
	return delta
}

// reindentLine adjusts the whitespace right after the linebreak at index i;
// returns how many tokens the buffer grew by (-1, 0 or 1).
func reindentLine(f *Formatter, i, depth int, stack []indentScope, unit string) int {
	j := i + 1
	hasWhitespace := j < f.Len() && f.Token(j).IsWhitespace()
	next := f.Token(j)
	if hasWhitespace {
		next = f.Token(j + 1)
	}

	want := ""
	blank := next.IsLinebreak() || next == (swiftparser.Token{})
	if !blank {
		d := depth
		if next.Type == swiftparser.EndOfScopeToken {
			d -= peekCloseDelta(stack, next)
		}
		if d < 0 {
			d = 0
		}
		want = strings.Repeat(unit, d)
	}

	switch {
	case hasWhitespace && want == "":
		f.Remove(j)
		return -1
	case hasWhitespace:
		if f.Token(j).Value != want {
			f.Replace(j, swiftparser.Token{Type: swiftparser.WhitespaceToken, Value: want})
		}
		return 0
	case want != "":
		f.Insert(j, swiftparser.Token{Type: swiftparser.WhitespaceToken, Value: want})
		return 1
	}
	return 0
}

// peekCloseDelta is popClosedScopes without the popping.
func peekCloseDelta(stack []indentScope, tok swiftparser.Token) int {
	if len(stack) == 0 || !tok.ClosesScopeFor(stack[len(stack)-1].tok) {
		return 0
	}
	delta := 0
	top := stack[len(stack)-1]
	if top.counted {
		delta++
	}
	if tok.Value == "}" && top.tok.Value == ":" && len(stack) > 1 {
		if below := stack[len(stack)-2]; below.tok.Value == "{" && below.counted {
			delta++
		}
	}
	return delta
}

// isSwitchBrace looks backwards through the brace's own line for the switch
// keyword.
func isSwitchBrace(f *Formatter, braceIndex int) bool {
	for j := braceIndex - 1; j >= 0; j-- {
		tok := f.Token(j)
		switch {
		case tok.IsLinebreak(),
			tok == (swiftparser.Token{Type: swiftparser.StartOfScopeToken, Value: "{"}),
			tok == (swiftparser.Token{Type: swiftparser.EndOfScopeToken, Value: "}"}),
			tok == (swiftparser.Token{Type: swiftparser.SymbolToken, Value: ";"}):
			return false
		case tok.IsIdentifier() && tok.Value == "switch":
			k := j - 1
			if k >= 0 && f.Token(k).IsWhitespace() {
				k--
			}
			return k < 0 || f.Token(k) != (swiftparser.Token{Type: swiftparser.SymbolToken, Value: "."})
		}
	}
	return false
}

// TrailingSpace strips whitespace that runs into a linebreak or end of file.
var TrailingSpace = Rule{
	Name: "trailingSpace",
	Apply: func(f *Formatter) {
		for i := f.Len() - 1; i >= 0; i-- {
			if !f.Token(i).IsWhitespace() {
				continue
			}
			if i == f.Len()-1 || f.Token(i+1).IsLinebreak() {
				f.Remove(i)
			}
		}
	},
}

// ConsecutiveBlankLines collapses runs of more than one blank line.
var ConsecutiveBlankLines = Rule{
	Name: "consecutiveBlankLines",
	Apply: func(f *Formatter) {
		linebreaks := 0
		for i := 0; i < f.Len(); i++ {
			switch {
			case f.Token(i).IsLinebreak():
				linebreaks++
				if linebreaks > 2 {
					f.Remove(i)
					i--
					if i >= 0 && f.Token(i).IsWhitespace() {
						f.Remove(i)
						i--
					}
					linebreaks--
				}
			case f.Token(i).IsWhitespace():
				// whitespace-only lines stay part of the run
			default:
				linebreaks = 0
			}
		}
	},
}

// LinebreakAtEndOfFile makes sure a non-empty file ends with a linebreak.
var LinebreakAtEndOfFile = Rule{
	Name: "linebreakAtEndOfFile",
	Apply: func(f *Formatter) {
		if f.Len() == 0 || f.Token(f.Len()-1).IsLinebreak() {
			return
		}
		f.Insert(f.Len(), swiftparser.Token{Type: swiftparser.LinebreakToken, Value: "\n"})
	},
}
