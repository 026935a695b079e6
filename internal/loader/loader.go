// Package loader turns a datasource into an in-memory catalog dataset: it
// reads the raw bytes with a size cap, tokenizes and maps them into
// products, and tracks identity (UUID) and content identity (fingerprint)
// for each loaded dataset.
package loader

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"github.com/Dolat-Hamza/healf/internal/datasource"
	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/metrics"
	"github.com/Dolat-Hamza/healf/internal/parser/csv"
	"github.com/Dolat-Hamza/healf/internal/product"
)

// Dataset is one fully loaded catalog. Products are sanitized and ready for
// the query engine; the fingerprint is a stable hash of the raw bytes, so
// two loads of identical content share it even across dataset IDs.
type Dataset struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Fingerprint string            `json:"fingerprint"`
	Size        int64             `json:"size"`
	Products    []product.Product `json:"products"`
	LoadedAt    time.Time         `json:"loadedAt"`
	ParseTime   time.Duration     `json:"parseTime"`
}

// Options tunes a Loader. Zero values take defaults: a 50MB byte cap and
// slog.Default().
type Options struct {
	// MaxBytes caps how much a source may yield before the load fails with
	// FILE_TOO_LARGE.
	MaxBytes int64

	// Parser is passed through to the CSV tokenizer.
	Parser csv.Options

	Logger *slog.Logger
}

// Loader reads sources into Datasets. Safe for concurrent use; concurrent
// loads of the same key are collapsed to a single read.
type Loader struct {
	opt   Options
	group singleflight.Group
}

// New constructs a Loader.
func New(opt Options) *Loader {
	if opt.MaxBytes <= 0 {
		opt.MaxBytes = 50 * 1024 * 1024
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Parser.Logger == nil {
		opt.Parser.Logger = opt.Logger
	}
	return &Loader{opt: opt}
}

// Load reads src fully and builds a Dataset named name; an empty name falls
// back to the source's own label when it has one. kind labels the load in
// metrics ("upload", "file", "url").
func (l *Loader) Load(ctx context.Context, src datasource.Source, name, kind string) (*Dataset, error) {
	start := time.Now()
	ds, err := l.load(ctx, src, name)
	metrics.RecordLoad(kind, err, time.Since(start))
	if err != nil {
		l.opt.Logger.Error("dataset load failed", "name", name, "kind", kind, "error", err)
		return nil, err
	}
	metrics.RecordRows("mapped", int64(len(ds.Products)))
	l.opt.Logger.Info("dataset loaded",
		"id", ds.ID, "name", ds.Name, "products", len(ds.Products),
		"bytes", ds.Size, "elapsed", ds.ParseTime)
	return ds, nil
}

// LoadShared is Load with request coalescing: concurrent calls with the same
// key wait on one underlying load and share its Dataset.
func (l *Loader) LoadShared(ctx context.Context, key string, src datasource.Source, name, kind string) (*Dataset, error) {
	v, err, _ := l.group.Do(key, func() (any, error) {
		return l.Load(ctx, src, name, kind)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

// LoadContent builds a Dataset straight from in-memory CSV text, the upload
// path where the bytes already arrived through the request body.
func (l *Loader) LoadContent(content []byte, name, kind string) (*Dataset, error) {
	start := time.Now()
	ds, err := l.build(content, name, start)
	metrics.RecordLoad(kind, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	metrics.RecordRows("mapped", int64(len(ds.Products)))
	return ds, nil
}

func (l *Loader) load(ctx context.Context, src datasource.Source, name string) (*Dataset, error) {
	if name == "" {
		if named, ok := src.(datasource.Named); ok {
			name = named.Name()
		}
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// Read one byte past the cap so an oversized source is detected without
	// buffering all of it.
	content, err := io.ReadAll(io.LimitReader(rc, l.opt.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(content)) > l.opt.MaxBytes {
		return nil, errs.CSV(
			fmt.Sprintf("file size exceeds maximum allowed size (%dMB)", l.opt.MaxBytes/1024/1024),
			errs.CodeFileTooLarge)
	}

	return l.build(content, name, time.Now())
}

func (l *Loader) build(content []byte, name string, start time.Time) (*Dataset, error) {
	doc := csv.Parse(string(content), l.opt.Parser)
	metrics.RecordRows("parsed", int64(len(doc.Rows)))

	products, err := product.MapRows(doc.Rows, l.opt.Logger)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i] = product.Sanitize(products[i])
	}

	sum := xxh3.Hash128(content).Bytes()

	return &Dataset{
		ID:          uuid.NewString(),
		Name:        name,
		Fingerprint: hex.EncodeToString(sum[:]),
		Size:        int64(len(content)),
		Products:    products,
		LoadedAt:    time.Now().UTC(),
		ParseTime:   time.Since(start),
	}, nil
}
