package swiftfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDiscrimination(t *testing.T) {
	options := DefaultOptions()

	// trailing newline, trailing semicolon and import order must never
	// collide; a formatted-output cache depends on it
	assert.NotEqual(t, Fingerprint("let x = 1", options), Fingerprint("let x = 1\n", options))
	assert.NotEqual(t, Fingerprint("let x = 1;", options), Fingerprint("let x = 1\n", options))
	assert.NotEqual(t,
		Fingerprint("import A\nimport B\n", options),
		Fingerprint("import B\nimport A\n", options))
}

func TestFingerprintStable(t *testing.T) {
	options := DefaultOptions()
	options.Extra = map[string]string{"b": "2", "a": "1"}
	first := Fingerprint("let x = 1\n", options)
	// map iteration order must not leak into the key
	for i := 0; i < 16; i++ {
		assert.Equal(t, first, Fingerprint("let x = 1\n", options))
	}
}

func TestFingerprintSensitiveToOptions(t *testing.T) {
	source := "let x = 1\n"
	plain := DefaultOptions()

	indented := DefaultOptions()
	indented.Indent = "\t"
	assert.NotEqual(t, Fingerprint(source, plain), Fingerprint(source, indented))

	versioned := DefaultOptions()
	versioned.SwiftVersion = "5.10"
	assert.NotEqual(t, Fingerprint(source, plain), Fingerprint(source, versioned))

	extra := DefaultOptions()
	extra.Extra = map[string]string{"wraparguments": "beforefirst"}
	assert.NotEqual(t, Fingerprint(source, plain), Fingerprint(source, extra))
}
