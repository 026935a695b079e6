// Package file implements local filesystem-backed catalog sources.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local is a filesystem source that opens a CSV export from disk. Safe for
// concurrent use as long as the path stays readable.
type Local struct{ path string }

// NewLocal binds a source to the provided path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Name is the base filename, used as the default dataset label.
func (l *Local) Name() string { return filepath.Base(l.path) }

// Open opens the configured path for reading.
//
// A context already canceled at call time returns the context error without
// touching the filesystem. Filesystem errors are wrapped with the path but
// still satisfy errors.Is checks (e.g. os.ErrNotExist).
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}

// Size reports the file size without opening it, for upload-style size
// pre-checks on local loads.
func (l *Local) Size() (int64, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", l.path, err)
	}
	return info.Size(), nil
}
