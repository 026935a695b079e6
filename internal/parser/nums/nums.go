// Package nums provides helpers for extracting numeric tokens from free-form
// text fields. It is used by the price decoder when a field that should carry
// structured pricing turns out to be a display string such as "$5.00 - $15.00".
package nums

import (
	"strconv"
	"unicode"
)

// ExtractDecimals scans s and returns every decimal token it contains.
//
// A token is a run of digits optionally followed by a dot and exactly two
// more digits ("5", "15.00"). A longer fractional part is split: "19.999"
// yields 19.99 and 9, matching prefix-style matching of display strings.
// Currency symbols and any other characters simply separate tokens.
func ExtractDecimals(s string) []float64 {
	var out []float64
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if !unicode.IsDigit(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		end := i
		// Optional ".dd" suffix; consumed only when both digits are present.
		if i+2 < len(runes) && runes[i] == '.' &&
			unicode.IsDigit(runes[i+1]) && unicode.IsDigit(runes[i+2]) {
			i += 3
			end = i
		}
		if f, err := strconv.ParseFloat(string(runes[start:end]), 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// MinMax returns the smallest and largest value in vals. It returns (0, 0)
// when vals is empty.
func MinMax(vals []float64) (min, max float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
