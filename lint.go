package swiftfmt

import (
	"strings"

	"github.com/kylelemons/godebug/diff"
)

// Change is one contiguous difference between the input and its formatted
// form, for lint reporting. Line is the 1-based line in the input where the
// change begins.
type Change struct {
	Line    int
	Deleted []string
	Added   []string
}

// Lint formats source and reports the line-level differences instead of the
// rewritten text. An empty result means the file is already formatted.
func Lint(source string, rules []Rule, options Options) ([]Change, error) {
	formatted, err := Format(source, rules, options)
	if err != nil {
		return nil, err
	}
	if formatted == source {
		return nil, nil
	}
	chunks := diff.DiffChunks(strings.Split(source, "\n"), strings.Split(formatted, "\n"))
	var changes []Change
	line := 1
	for _, c := range chunks {
		if len(c.Deleted) > 0 || len(c.Added) > 0 {
			changes = append(changes, Change{Line: line, Deleted: c.Deleted, Added: c.Added})
		}
		line += len(c.Equal) + len(c.Deleted)
	}
	return changes, nil
}
