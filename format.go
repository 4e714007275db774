package swiftfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/swiftfmt/swiftfmt/swiftparser"
)

// maxRounds bounds the fixed-point iteration. Rules may be mutually
// rewriting; ten rounds has proven enough for every non-pathological rule
// set, so beyond that we report non-termination instead of spinning.
const maxRounds = 10

// RuleCallback observes progress during ApplyRules: it receives the index of
// the rule that just ran, the current token buffer, and the warnings that
// rule emitted.
type RuleCallback func(ruleIndex int, tokens []swiftparser.Token, warnings []string)

// Format tokenizes source, applies rules to a fixed point and serializes the
// result. Malformed input yields a parsing error; a rule set that never
// stabilizes yields a writing error.
func Format(source string, rules []Rule, options Options) (string, error) {
	tokens, err := FormatTokens(swiftparser.Tokenize(source), rules, options)
	if err != nil {
		return "", err
	}
	return swiftparser.SourceCode(tokens), nil
}

// FormatTokens is Format for callers that already hold a token stream.
func FormatTokens(tokens []swiftparser.Token, rules []Rule, options Options) ([]swiftparser.Token, error) {
	return ApplyRules(rules, tokens, options, nil)
}

// ApplyRules drives the rule list over the token buffer until a full pass
// changes nothing. Callers never observe the option inference or the
// file-header pinning: the passed options record is copied, not mutated.
func ApplyRules(rules []Rule, tokens []swiftparser.Token, options Options, callback RuleCallback) ([]swiftparser.Token, error) {
	if perr := swiftparser.ParsingError(tokens, options.errorOptions()); perr != nil {
		return nil, &Error{Kind: ParsingError, Message: perr.Error()}
	}

	working := options
	if working.Indent == "" {
		working.Indent = inferIndent(tokens)
	}

	current := append([]swiftparser.Token{}, tokens...)
	for round := 0; round < maxRounds; round++ {
		f := newFormatter(append([]swiftparser.Token{}, current...), working)
		for i, rule := range rules {
			if err := applyWithTimeout(rule, f); err != nil {
				return nil, err
			}
			warnings := f.takeWarnings()
			if callback != nil {
				callback(i, f.tokens, warnings)
			}
		}
		if tokensEqual(f.tokens, current) {
			return f.tokens, nil
		}
		current = f.tokens
		// the file-header rule is the one documented oscillation source;
		// pin it after the first round
		working.FileHeader = FileHeaderIgnore
	}
	return nil, &Error{
		Kind:    WritingError,
		Message: fmt.Sprintf("formatting failed to terminate after %d rounds", maxRounds),
	}
}

// applyWithTimeout runs one rule on a worker goroutine and abandons it if it
// exceeds its time budget: one second plus a millisecond per token.
func applyWithTimeout(rule Rule, f *Formatter) error {
	timeout := time.Second + time.Duration(f.Len())*time.Millisecond
	done := make(chan struct{})
	go func() {
		defer close(done)
		rule.Apply(f)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return &Error{
			Kind:    WritingError,
			Message: fmt.Sprintf("rule %s exceeded its time budget of %s", rule.Name, timeout),
		}
	}
}

func tokensEqual(a, b []swiftparser.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// inferIndent guesses the indentation unit from the source: the shortest
// non-empty run of leading spaces, or a tab if the file indents with tabs.
// Four spaces when the source gives no hint.
func inferIndent(tokens []swiftparser.Token) string {
	best := ""
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type != swiftparser.LinebreakToken {
			continue
		}
		ws := tokens[i+1]
		if ws.Type != swiftparser.WhitespaceToken || ws.Value == "" {
			continue
		}
		if i+2 < len(tokens) && tokens[i+2].Type == swiftparser.LinebreakToken {
			continue // blank line, not evidence
		}
		if strings.HasPrefix(ws.Value, "\t") {
			return "\t"
		}
		if strings.Trim(ws.Value, " ") != "" {
			continue
		}
		if best == "" || len(ws.Value) < len(best) {
			best = ws.Value
		}
	}
	if best == "" {
		return "    "
	}
	return best
}
