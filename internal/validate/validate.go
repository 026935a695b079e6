// Package validate implements the strict, diagnostics-producing CSV pass.
//
// It deliberately re-parses raw text instead of reusing the best-effort
// mapper in internal/product: the two paths share only the low-level shape
// of the data, not a failure policy. The mapper silently defaults anything
// it cannot read; this validator classifies every row as valid or invalid
// and reports field-level error strings, which requires its own stricter
// decoding rules (JSON sub-fields must actually be JSON, numbers must be
// numbers when ValidateDataTypes is on).
package validate

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/parser/csv"
	"github.com/Dolat-Hamza/healf/internal/product"
)

// Options tunes the validation pass. Use DefaultOptions as the base;
// zero-value Options would reject everything over 0 rows.
type Options struct {
	// StrictMode is accepted for API compatibility but currently
	// informational; no decision is made on it.
	StrictMode bool

	// AllowMissingFields, when true (the default), lets rows with empty
	// required values pass instead of marking the row invalid.
	AllowMissingFields bool

	// MaxFileSize caps upload size in bytes for the pre-check.
	MaxFileSize int64

	// MaxRows caps the number of non-empty lines (header included); more is
	// a batch-fatal FILE_TOO_LARGE error.
	MaxRows int

	// RequiredFields lists headers that must exist (case-insensitive).
	RequiredFields []string

	// SkipEmptyRows drops blank lines before any counting or validation.
	SkipEmptyRows bool

	// ValidateDataTypes makes malformed JSON sub-fields and numbers hard
	// per-row errors; when false they silently default.
	ValidateDataTypes bool

	// Logger receives aggregate diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults: lenient on missing values,
// 50MB / 100k-row ceilings, ID+TITLE+VENDOR required, data types enforced.
func DefaultOptions() Options {
	return Options{
		AllowMissingFields: true,
		MaxFileSize:        50 * 1024 * 1024,
		MaxRows:            100_000,
		RequiredFields:     []string{"ID", "TITLE", "VENDOR"},
		SkipEmptyRows:      true,
		ValidateDataTypes:  true,
	}
}

// InvalidRow pairs a 1-based row number (the header is row 1) with the raw
// row data and every error found on it.
type InvalidRow struct {
	Row    int         `json:"row"`
	Data   product.Row `json:"data"`
	Errors []string    `json:"errors"`
}

// Summary carries the aggregate counts and the end-to-end processing time.
// The time is observability only; no control decision reads it.
type Summary struct {
	TotalRows      int           `json:"totalRows"`
	ValidRows      int           `json:"validRows"`
	InvalidRows    int           `json:"invalidRows"`
	ProcessingTime time.Duration `json:"processingTime"`
}

// Result is the full outcome of a validation pass. A row lands in exactly
// one of ValidProducts or InvalidProducts, never both.
type Result struct {
	IsValid         bool              `json:"isValid"`
	Errors          []string          `json:"errors"`
	Warnings        []string          `json:"warnings"`
	ValidProducts   []product.Product `json:"validProducts"`
	InvalidProducts []InvalidRow      `json:"invalidProducts"`
	Summary         Summary           `json:"summary"`
}

// Upload pre-checks a file by name and size before its content is read.
// Size violations are batch-fatal; suspicious names or content types only
// warn. The returned Result has empty product slices by design.
func Upload(filename, contentType string, size int64, opt Options) (Result, error) {
	start := time.Now()
	res := Result{IsValid: true}

	if filename == "" {
		return res, errs.CSV("no file provided", errs.CodeNoFile)
	}
	if size == 0 {
		return res, errs.CSV("CSV file is empty", errs.CodeEmptyFile)
	}
	if opt.MaxFileSize > 0 && size > opt.MaxFileSize {
		return res, errs.CSV(
			fmt.Sprintf("file size (%dMB) exceeds maximum allowed size (%dMB)",
				size/1024/1024, opt.MaxFileSize/1024/1024),
			errs.CodeFileTooLarge)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		res.Warnings = append(res.Warnings,
			"File does not have .csv extension - ensure it contains CSV data")
	}
	if contentType != "" && !strings.Contains(contentType, "csv") && !strings.Contains(contentType, "text") {
		res.Warnings = append(res.Warnings,
			"File MIME type suggests it may not be a CSV file")
	}

	res.Summary.ProcessingTime = time.Since(start)
	return res, nil
}

// Content validates raw CSV text row by row.
//
// Batch-fatal conditions (empty input, row ceiling, empty header row,
// missing required headers) return a *errs.CSVError and no Result. Per-row
// problems never abort the batch: a column-count mismatch or missing
// required value marks the row invalid with whatever values were present,
// and subsequent rows continue to validate normally.
func Content(content string, opt Options) (Result, error) {
	start := time.Now()
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	res := Result{}

	if strings.TrimSpace(content) == "" {
		return res, errs.CSV("CSV content is empty", errs.CodeEmptyFile)
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if opt.SkipEmptyRows {
		kept := lines[:0]
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}
		lines = kept
	}
	if len(lines) == 0 {
		return res, errs.CSV("no valid lines found in CSV", errs.CodeEmptyFile)
	}
	if opt.MaxRows > 0 && len(lines) > opt.MaxRows {
		return res, errs.CSV(
			fmt.Sprintf("CSV contains %d rows, which exceeds the maximum of %d", len(lines), opt.MaxRows),
			errs.CodeFileTooLarge)
	}

	headerLine := lines[0]
	if strings.TrimSpace(headerLine) == "" {
		return res, errs.CSV("header row is empty", errs.CodeMissingHeaders)
	}
	headers := csv.SplitLine(headerLine, ',')

	var missing []string
	for _, required := range opt.RequiredFields {
		if findHeader(headers, required) == "" {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return res, errs.CSV(
			"missing required headers: "+strings.Join(missing, ", "),
			errs.CodeMissingHeaders)
	}

	if len(lines) == 1 {
		res.Warnings = append(res.Warnings, "CSV contains only headers, no data rows")
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if opt.SkipEmptyRows && strings.TrimSpace(line) == "" {
			continue
		}
		rowNumber := i + 1
		var rowErrors []string

		values := csv.SplitLine(line, ',')
		if len(values) != len(headers) {
			rowErrors = append(rowErrors,
				fmt.Sprintf("Column count mismatch: expected %d, got %d", len(headers), len(values)))
		}

		rowData := make(product.Row, len(headers))
		for j, h := range headers {
			if j < len(values) {
				rowData[h] = values[j]
			} else {
				rowData[h] = ""
			}
		}

		if !opt.AllowMissingFields {
			var missingValues []string
			for _, required := range opt.RequiredFields {
				header := findHeader(headers, required)
				if header != "" && strings.TrimSpace(rowData[header]) == "" {
					missingValues = append(missingValues, required)
				}
			}
			if len(missingValues) > 0 {
				rowErrors = append(rowErrors,
					"Missing required field values: "+strings.Join(missingValues, ", "))
			}
		}

		if len(rowErrors) > 0 {
			res.InvalidProducts = append(res.InvalidProducts,
				InvalidRow{Row: rowNumber, Data: rowData, Errors: rowErrors})
			continue
		}

		p, err := rowToProduct(rowData, headers, opt)
		if err != nil {
			res.InvalidProducts = append(res.InvalidProducts,
				InvalidRow{Row: rowNumber, Data: rowData, Errors: []string{errs.Message(err)}})
			continue
		}
		res.ValidProducts = append(res.ValidProducts, p)
	}

	if len(res.ValidProducts) > 10_000 {
		res.Warnings = append(res.Warnings,
			"Large dataset detected - consider implementing pagination for better performance")
	}
	if float64(len(res.InvalidProducts)) > float64(len(res.ValidProducts))*0.1 {
		res.Warnings = append(res.Warnings,
			"High error rate detected - please review CSV format and data quality")
	}
	for _, w := range res.Warnings {
		logger.Warn("validation warning", "warning", w)
	}

	res.IsValid = len(res.Errors) == 0 && len(res.InvalidProducts) == 0
	res.Summary = Summary{
		TotalRows:      len(res.ValidProducts) + len(res.InvalidProducts),
		ValidRows:      len(res.ValidProducts),
		InvalidRows:    len(res.InvalidProducts),
		ProcessingTime: time.Since(start),
	}
	return res, nil
}

// findHeader returns the actual header cell matching name case-insensitively,
// or "" when absent.
func findHeader(headers []string, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h, name) {
			return h
		}
	}
	return ""
}

// SummaryLine renders the one-line human-readable digest shown after an
// upload finishes.
func SummaryLine(res Result) string {
	successRate := "0"
	if res.Summary.TotalRows > 0 {
		successRate = strconv.FormatFloat(
			float64(res.Summary.ValidRows)/float64(res.Summary.TotalRows)*100, 'f', 1, 64)
	}
	msg := fmt.Sprintf("Processed %d rows in %.2fms. Success rate: %s%% (%d valid, %d invalid).",
		res.Summary.TotalRows,
		float64(res.Summary.ProcessingTime.Microseconds())/1000,
		successRate, res.Summary.ValidRows, res.Summary.InvalidRows)
	if len(res.Errors) > 0 {
		msg += fmt.Sprintf(" Errors: %d.", len(res.Errors))
	}
	if len(res.Warnings) > 0 {
		msg += fmt.Sprintf(" Warnings: %d.", len(res.Warnings))
	}
	return msg
}
