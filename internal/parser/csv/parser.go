// Package csv turns raw catalog-export text into raw rows keyed by header
// name. It owns delimiter detection and line tokenization; everything
// type-shaped (price objects, image lists, numbers) is decoded downstream.
//
// The parser is deliberately forgiving: rows with the wrong column count are
// kept with whatever values are present, and diagnostics go to an injected
// logger instead of aborting the batch. The strict counterpart that turns
// anomalies into per-row errors lives in internal/validate.
package csv

import (
	"log/slog"
	"strings"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Options configures document parsing. The zero value is usable.
type Options struct {
	// Delimiter forces a field separator. When zero, the separator is
	// auto-detected from the first line (tab vs comma by count).
	Delimiter rune

	// KeepEmptyLines retains blank lines as empty rows instead of dropping
	// them. The default mirrors the upload path: blanks are skipped.
	KeepEmptyLines bool

	// Logger receives parse diagnostics (column-count mismatches). Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// Document is a fully tokenized CSV text: the detected delimiter, the header
// row in source order, and one Row per data line. Unknown columns survive in
// the rows untouched so table views can render them even when product
// mapping ignores them.
type Document struct {
	Delimiter rune
	Headers   []string
	Rows      []product.Row
}

// Parse tokenizes raw CSV text into a Document.
//
// The first non-empty line is the header; each header cell is trimmed and
// the first one loses its BOM if it has one. Data rows shorter than the
// header leave the missing keys absent; longer rows have their surplus
// fields dropped. Empty input yields a Document with no headers and no rows
// rather than an error — batch-level emptiness is the mapper's call.
func Parse(text string, opt Options) Document {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if !opt.KeepEmptyLines {
		kept := lines[:0]
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	}
	if len(lines) == 0 {
		return Document{Delimiter: ','}
	}

	delim := opt.Delimiter
	if delim == 0 {
		delim = DetectDelimiter(lines[0])
	}

	headers := SplitLine(lines[0], delim)
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	doc := Document{
		Delimiter: delim,
		Headers:   headers,
		Rows:      make([]product.Row, 0, len(lines)-1),
	}

	var mismatched int
	for _, line := range lines[1:] {
		fields := SplitLine(line, delim)
		if len(fields) != len(headers) {
			mismatched++
		}
		row := make(product.Row, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			}
		}
		doc.Rows = append(doc.Rows, row)
	}
	if mismatched > 0 {
		logger.Warn("rows with unexpected column count were kept best-effort",
			"rows", mismatched, "columns", len(headers))
	}
	return doc
}
