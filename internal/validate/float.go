package validate

import (
	"strconv"
	"strings"
)

// parseFloatLoose parses value the way a display layer would: full-string
// first, then the longest leading numeric prefix ("9.99 USD" -> 9.99). The
// second return is false when no digits lead the string.
func parseFloatLoose(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	end := 0
	seenDigit := false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		seenDigit = true
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			seenDigit = true
		}
	}
	if !seenDigit {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// trimFloat renders a float without a trailing ".0" for whole numbers,
// matching how the source values usually look.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
