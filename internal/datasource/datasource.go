// Package datasource abstracts where raw catalog CSV bytes come from. A
// Source yields a readable stream; the loader owns decoding and never cares
// whether the bytes arrived from disk, an upload, or a remote URL.
package datasource

import (
	"context"
	"io"
)

// Source is a single openable stream of CSV bytes.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Named is implemented by sources that know a human-readable name for the
// dataset they produce (a filename, a URL-derived slug). The loader uses it
// for dataset labels when the caller does not supply one.
type Named interface {
	Name() string
}
