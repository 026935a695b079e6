package httpds

import (
	"encoding/hex"
	"net/url"
	"path"
	"regexp"

	"github.com/zeebo/xxh3"
)

// nameCleaner collapses sequences of non-alphanumeric characters into "_".
var nameCleaner = regexp.MustCompile(`[^a-zA-Z0-9]+`)

var edgeUnderscores = regexp.MustCompile(`^_+|_+$`)

// HashString returns a stable xxh3 hex digest of s, for deterministic
// identifiers when no natural key exists.
func HashString(s string) string {
	sum := xxh3.Hash128([]byte(s)).Bytes()
	return hex.EncodeToString(sum[:])
}

// DatasetNameFromURL derives a filesystem-safe dataset label from a raw URL.
// It prefers the final path segment (usually the export filename), falling
// back to a hash of the whole URL when the URL cannot be parsed or the
// cleaned segment is empty. Non-alphanumeric runs become single underscores.
func DatasetNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return HashString(rawURL)
	}

	clean := nameCleaner.ReplaceAllString(path.Base(u.Path), "_")
	clean = edgeUnderscores.ReplaceAllString(clean, "")
	if clean == "" || clean == "_" {
		return HashString(rawURL)
	}
	return clean
}
