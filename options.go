package swiftfmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/swiftfmt/swiftfmt/swiftparser"
)

// FileHeaderIgnore leaves whatever header the file has alone, as does an
// empty FileHeader. Any other value is the literal comment text to enforce at
// the top of the file.
const FileHeaderIgnore = "ignore"

// Options that affect tokenizing and formatting; pass DefaultOptions() to get
// defaults. Fields the core doesn't recognize travel in Extra and are visible
// to rules untouched.
type Options struct {
	// Fragment marks the input as a snippet, so dangling-token errors don't
	// fail the format call.
	Fragment bool

	// IgnoreConflictMarkers suppresses merge-conflict detection.
	IgnoreConflictMarkers bool

	// TabWidth only affects line/column computation for diagnostics.
	TabWidth int

	// Indent is the whitespace for one indentation level. Empty means infer
	// it from the source, falling back to four spaces.
	Indent string

	// FileHeader is FileHeaderIgnore or the literal header comment to
	// enforce. It is pinned to FileHeaderIgnore after the first formatting
	// round.
	FileHeader string

	// SwiftVersion is opaque to the core; rules may consult it.
	SwiftVersion string

	// Extra holds options the core doesn't interpret.
	Extra map[string]string
}

func DefaultOptions() Options {
	return Options{
		TabWidth:   4,
		FileHeader: FileHeaderIgnore,
	}
}

func (o Options) errorOptions() swiftparser.ErrorOptions {
	return swiftparser.ErrorOptions{
		Fragment:              o.Fragment,
		IgnoreConflictMarkers: o.IgnoreConflictMarkers,
		TabWidth:              o.TabWidth,
	}
}

// cacheKey serializes every field that can influence formatted output, for
// use in Fingerprint.
func (o Options) cacheKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fragment=%t;conflictmarkers=%t;tabwidth=%d;indent=%q;fileheader=%q;swiftversion=%q",
		o.Fragment, o.IgnoreConflictMarkers, o.TabWidth, o.Indent, o.FileHeader, o.SwiftVersion)
	keys := make([]string, 0, len(o.Extra))
	for k := range o.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, ";%s=%q", k, o.Extra[k])
	}
	return b.String()
}
