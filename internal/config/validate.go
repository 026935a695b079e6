// This file adds a lightweight linter for Config values. It performs static
// checks over a decoded Config and returns a list of issues (errors and
// warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block startup.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding that should be surfaced to users
	// but does not block startup.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding.
//
// Path is a dotted path into the config (e.g. "dataset.url",
// "query.page_size"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where one is expected.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Config. It does not mutate the
// config; callers decide whether warnings are fatal.
func Validate(cfg Config) []Issue {
	var issues []Issue

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "server.addr",
			Message:  "listen address must not be empty",
		})
	}

	issues = append(issues, validateDataset(cfg.Dataset)...)
	issues = append(issues, validateQuery(cfg.Query)...)
	return issues
}

func validateDataset(d Dataset) []Issue {
	var issues []Issue

	if d.Path != "" && d.URL != "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset",
			Message:  "path and url are mutually exclusive; configure one startup source",
		})
	}
	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "dataset.url",
				Message:  fmt.Sprintf("%q is not a valid http(s) URL", d.URL),
			})
		}
	}
	if d.MaxFileSize < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset.max_file_size",
			Message:  "must not be negative",
		})
	}
	if d.MaxRows < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset.max_rows",
			Message:  "must not be negative",
		})
	}
	if d.Delimiter != "" && utf8.RuneCountInString(d.Delimiter) != 1 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset.delimiter",
			Message:  fmt.Sprintf("%q must be a single character", d.Delimiter),
		})
	}
	return issues
}

func validateQuery(q Query) []Issue {
	var issues []Issue

	if q.PageSize < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "query.page_size",
			Message:  "must not be negative",
		})
	}
	if q.PageSize > 1000 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "query.page_size",
			Message:  "pages over 1000 products defeat pagination; consider a smaller size",
		})
	}
	if q.ChunkSize < 0 || q.MaxVisibleRows < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "query",
			Message:  "chunk_size and max_visible_rows must not be negative",
		})
	}
	if q.ChunkSize > 0 && q.MaxVisibleRows > 0 && q.ChunkSize > q.MaxVisibleRows {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "query.chunk_size",
			Message:  "chunk_size exceeds max_visible_rows; the first chunk will be clipped",
		})
	}
	if q.FuzzyThreshold < 0 || q.FuzzyThreshold > 1 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "query.fuzzy_threshold",
			Message:  "must be within [0, 1]",
		})
	}
	return issues
}

// HasErrors reports whether any issue is severity error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
