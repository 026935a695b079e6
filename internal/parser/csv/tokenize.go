package csv

import (
	"encoding/csv"
	"strings"
)

// SplitLine tokenizes one line into trimmed fields.
//
// The comma path runs a dedicated quote-aware scan: a doubled quote inside a
// quoted field emits one literal quote, an unquoted delimiter ends the
// current field, and the trailing field is always emitted even when the line
// carries no delimiter at all. Other delimiters go through encoding/csv in
// lenient mode, falling back to the scan if the reader balks.
func SplitLine(line string, delim rune) []string {
	if delim != ',' {
		if fields, ok := splitStdlib(line, delim); ok {
			return fields
		}
	}
	return scanFields(line, delim)
}

func splitStdlib(line string, delim rune) ([]string, bool) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	record, err := cr.Read()
	if err != nil {
		return nil, false
	}
	for i, f := range record {
		record[i] = strings.TrimSpace(f)
	}
	return record, true
}

// scanFields is the single-pass state machine shared by the comma path and
// the fallback. It tracks only an inQuotes flag.
func scanFields(line string, delim rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
