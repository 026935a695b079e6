// Package errs defines the error taxonomy shared by the ingestion pipeline
// and its callers.
//
// Three typed errors cover the pipeline's failure modes: CSVError for
// batch-level structural problems (always fatal, machine-readable code),
// ValidationError for a single field value violating its expected shape, and
// ParseError for row-level structural anomalies. Classification into a kind
// plus a retryability flag is exposed so a caller can decide whether to
// offer a retry action; the pipeline itself never retries.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Codes carried by CSVError. They are part of the caller-facing contract;
// presentation layers switch on them for messages and suggestions.
const (
	CodeNoFile         = "NO_FILE"
	CodeEmptyFile      = "EMPTY_FILE"
	CodeInvalidFormat  = "INVALID_FORMAT"
	CodeMissingHeaders = "MISSING_HEADERS"
	CodeFileTooLarge   = "FILE_TOO_LARGE"
	CodeNetworkError   = "NETWORK_ERROR"
	CodeTimeout        = "TIMEOUT"
)

// CSVError is a fatal, batch-level structural error: nothing in the input
// could be (or was allowed to be) processed.
type CSVError struct {
	Code    string
	Message string
}

func (e *CSVError) Error() string { return e.Message }

// CSV constructs a CSVError with the given message and code.
func CSV(message, code string) *CSVError {
	return &CSVError{Code: code, Message: message}
}

// ValidationError reports a single field whose value violates the expected
// type or shape. It is row-scoped: the validator records it against the row
// and keeps going.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation constructs a ValidationError for a field and offending value.
func Validation(message, field, value string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError reports a structural anomaly in a row, such as a column-count
// mismatch. Line is 1-based when known, 0 otherwise.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
	}
	return "parse error: " + e.Message
}

// Parse constructs a ParseError; pass line 0 when the location is unknown.
func Parse(message string, line int) *ParseError {
	return &ParseError{Line: line, Message: message}
}

// Kind buckets an error for presentation purposes.
type Kind string

const (
	KindCSV        Kind = "csv"
	KindValidation Kind = "validation"
	KindParse      Kind = "parse"
	KindNetwork    Kind = "network"
	KindUnknown    Kind = "unknown"
)

// Classify buckets err and reports whether a retry could plausibly succeed.
// Only network-flavored failures are retryable; structural and validation
// errors will fail identically on a second attempt.
func Classify(err error) (Kind, bool) {
	var csvErr *CSVError
	if errors.As(err, &csvErr) {
		retryable := csvErr.Code == CodeNetworkError || csvErr.Code == CodeTimeout
		return KindCSV, retryable
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindValidation, false
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return KindParse, false
	}
	if err != nil {
		msg := err.Error()
		if strings.Contains(msg, "fetch") || strings.Contains(msg, "network") {
			return KindNetwork, true
		}
	}
	return KindUnknown, false
}

// IsRetryable is a convenience over Classify.
func IsRetryable(err error) bool {
	_, retryable := Classify(err)
	return retryable
}

// Message renders a human-readable description of err, preferring the fixed
// per-code copy for CSV errors so the UI wording stays consistent.
func Message(err error) string {
	var csvErr *CSVError
	if errors.As(err, &csvErr) {
		switch csvErr.Code {
		case CodeEmptyFile:
			return "The CSV file is empty or contains no valid data."
		case CodeInvalidFormat:
			return "The file format is not valid. Please ensure it's a proper CSV file."
		case CodeMissingHeaders:
			return "The CSV file is missing required column headers."
		case CodeNetworkError:
			return "Failed to load the CSV file. Please check your connection and try again."
		case CodeFileTooLarge:
			return "The CSV file is too large to process. Please use a smaller file."
		default:
			return csvErr.Message
		}
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return fmt.Sprintf("Invalid data in field %q: %s", valErr.Field, valErr.Message)
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("Parse error at line %d: %s", parseErr.Line, parseErr.Message)
		}
		return "Parse error: " + parseErr.Message
	}
	if err == nil || err.Error() == "" {
		return "An unexpected error occurred."
	}
	return err.Error()
}

// Suggestions returns actionable follow-ups the caller can surface next to
// the error message.
func Suggestions(err error) []string {
	var csvErr *CSVError
	if errors.As(err, &csvErr) {
		switch csvErr.Code {
		case CodeEmptyFile:
			return []string{
				"Check that the CSV file contains data",
				"Ensure the file was uploaded correctly",
				"Try uploading a different CSV file",
			}
		case CodeInvalidFormat:
			return []string{
				"Ensure the file has a .csv extension",
				"Check that columns are separated by commas",
				"Verify the file is not corrupted",
			}
		case CodeMissingHeaders:
			return []string{
				"Add the required column headers to your CSV",
				"Check the sample CSV format for reference",
				"Ensure headers match the expected format",
			}
		case CodeNetworkError:
			return []string{
				"Check your internet connection",
				"Try refreshing the page",
				"Contact support if the problem persists",
			}
		case CodeFileTooLarge:
			return []string{
				"Split the CSV into smaller files",
				"Remove unnecessary columns",
				"Contact support for large file processing",
			}
		}
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return []string{
			"Check the data format in the CSV file",
			"Ensure all required fields are present",
			"Verify data types match expected formats",
		}
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return []string{
			"Check for malformed CSV syntax",
			"Ensure quotes are properly escaped",
			"Verify line endings are consistent",
		}
	}
	return []string{
		"Try refreshing the page",
		"Check your internet connection",
		"Contact support if the problem persists",
	}
}
