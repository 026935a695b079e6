package query

import (
	"fmt"
	"time"
)

// Hint severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// PerformanceHint flags one measurement that crossed a threshold, with a
// human recommendation for dealing with it.
type PerformanceHint struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Threshold      int64  `json:"threshold,omitempty"`
}

// PerformanceStats are the inputs to AnalyzePerformance, gathered by the
// loader and the query handlers.
type PerformanceStats struct {
	CSVSize      int64
	ProductCount int
	SearchTime   time.Duration
	MemoryUsage  int64
}

// AnalyzePerformance checks each stat against fixed thresholds and returns
// the hints that fired, in stat order. A stat can fire twice when it crosses
// both its warning and critical lines.
func AnalyzePerformance(stats PerformanceStats) []PerformanceHint {
	var hints []PerformanceHint

	const mb = 1024 * 1024
	if stats.CSVSize > 10*mb {
		hints = append(hints, PerformanceHint{
			Category:       "csv",
			Severity:       SeverityWarning,
			Title:          "Large CSV File Detected",
			Description:    fmt.Sprintf("CSV file size is %.2fMB", float64(stats.CSVSize)/mb),
			Recommendation: "Consider splitting into smaller files or implementing server-side processing",
			Threshold:      10 * mb,
		})
	}
	if stats.CSVSize > 50*mb {
		hints = append(hints, PerformanceHint{
			Category:       "csv",
			Severity:       SeverityCritical,
			Title:          "Very Large CSV File",
			Description:    fmt.Sprintf("CSV file size is %.2fMB", float64(stats.CSVSize)/mb),
			Recommendation: "Use database storage instead of CSV for better performance",
			Threshold:      50 * mb,
		})
	}

	if stats.ProductCount > 1000 {
		hints = append(hints, PerformanceHint{
			Category:       "ui",
			Severity:       SeverityInfo,
			Title:          "Large Product Dataset",
			Description:    fmt.Sprintf("%d products loaded", stats.ProductCount),
			Recommendation: "Implement pagination or virtual scrolling for better UI performance",
			Threshold:      1000,
		})
	}
	if stats.ProductCount > 10000 {
		hints = append(hints, PerformanceHint{
			Category:       "search",
			Severity:       SeverityWarning,
			Title:          "Very Large Product Dataset",
			Description:    fmt.Sprintf("%d products loaded", stats.ProductCount),
			Recommendation: "Consider implementing server-side search and filtering",
			Threshold:      10000,
		})
	}

	searchMillis := float64(stats.SearchTime.Microseconds()) / 1000
	if searchMillis > 100 {
		hints = append(hints, PerformanceHint{
			Category:       "search",
			Severity:       SeverityWarning,
			Title:          "Slow Search Performance",
			Description:    fmt.Sprintf("Search taking %.2fms", searchMillis),
			Recommendation: "Implement search indexing or precompute lowercase fields",
			Threshold:      100,
		})
	}
	if searchMillis > 500 {
		hints = append(hints, PerformanceHint{
			Category:       "search",
			Severity:       SeverityCritical,
			Title:          "Very Slow Search Performance",
			Description:    fmt.Sprintf("Search taking %.2fms", searchMillis),
			Recommendation: "Move search to a dedicated index or search service",
			Threshold:      500,
		})
	}

	if stats.MemoryUsage > 100*mb {
		hints = append(hints, PerformanceHint{
			Category:       "memory",
			Severity:       SeverityWarning,
			Title:          "High Memory Usage",
			Description:    fmt.Sprintf("Memory usage is %.2fMB", float64(stats.MemoryUsage)/mb),
			Recommendation: "Release old datasets and consider lazy loading strategies",
			Threshold:      100 * mb,
		})
	}

	return hints
}
