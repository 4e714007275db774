package swiftfmt

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Fingerprint returns a cache key for source under the given options. Any
// two inputs that could format differently hash differently, because the raw
// source and every output-affecting option feed the digest directly; a cache
// keyed on it can skip formatting entirely.
//
// 12 bytes of sha256 keeps the key short while leaving collision odds far
// below anything a cache of formatted files will ever see.
func Fingerprint(source string, options Options) string {
	hasher := sha256.New()
	if _, err := io.WriteString(hasher, options.cacheKey()); err != nil {
		panic(err) // sha256 never returns a write error
	}
	hasher.Write([]byte{0})
	if _, err := io.WriteString(hasher, source); err != nil {
		panic(err)
	}
	return hex.EncodeToString(hasher.Sum(nil)[:12])
}
