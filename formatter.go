package swiftfmt

import (
	"fmt"

	"github.com/swiftfmt/swiftfmt/swiftparser"
)

// Formatter is the substrate rules operate on: a mutable token buffer, a
// read-only options record and a warning sink that is drained after every
// rule. One Formatter owns its buffer exclusively for the duration of a
// format call.
type Formatter struct {
	tokens   []swiftparser.Token
	options  Options
	warnings []string
}

func newFormatter(tokens []swiftparser.Token, options Options) *Formatter {
	return &Formatter{tokens: tokens, options: options}
}

// Tokens exposes the live buffer; rules normally go through the indexed
// helpers instead.
func (f *Formatter) Tokens() []swiftparser.Token {
	return f.tokens
}

func (f *Formatter) Options() Options {
	return f.options
}

func (f *Formatter) Len() int {
	return len(f.tokens)
}

// Token returns the token at index i, or a zero token out of range; rules can
// probe neighbours without bounds bookkeeping.
func (f *Formatter) Token(i int) swiftparser.Token {
	if i < 0 || i >= len(f.tokens) {
		return swiftparser.Token{}
	}
	return f.tokens[i]
}

func (f *Formatter) Replace(i int, tok swiftparser.Token) {
	f.tokens[i] = tok
}

func (f *Formatter) Insert(i int, tok swiftparser.Token) {
	f.tokens = append(f.tokens, swiftparser.Token{})
	copy(f.tokens[i+1:], f.tokens[i:])
	f.tokens[i] = tok
}

func (f *Formatter) Remove(i int) {
	f.tokens = append(f.tokens[:i], f.tokens[i+1:]...)
}

// RemoveRange removes tokens[i:j].
func (f *Formatter) RemoveRange(i, j int) {
	f.tokens = append(f.tokens[:i], f.tokens[j:]...)
}

// InsertAll inserts toks starting at index i.
func (f *Formatter) InsertAll(i int, toks []swiftparser.Token) {
	rest := append([]swiftparser.Token{}, f.tokens[i:]...)
	f.tokens = append(append(f.tokens[:i], toks...), rest...)
}

// IndexOfNext returns the first index >= from whose token satisfies pred, or
// -1.
func (f *Formatter) IndexOfNext(from int, pred func(swiftparser.Token) bool) int {
	for i := from; i < len(f.tokens); i++ {
		if pred(f.tokens[i]) {
			return i
		}
	}
	return -1
}

// IndexOfPrevious returns the last index <= from whose token satisfies pred,
// or -1.
func (f *Formatter) IndexOfPrevious(from int, pred func(swiftparser.Token) bool) int {
	for i := from; i >= 0; i-- {
		if i < len(f.tokens) && pred(f.tokens[i]) {
			return i
		}
	}
	return -1
}

// Warn records a warning for the rule currently running; the engine drains
// the sink after each rule.
func (f *Formatter) Warn(format string, args ...interface{}) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *Formatter) takeWarnings() []string {
	w := f.warnings
	f.warnings = nil
	return w
}
