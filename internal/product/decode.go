package product

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Dolat-Hamza/healf/internal/parser/nums"
)

// ParsePriceRange decodes the price-range column of a catalog export.
//
// The structured form is a JSON object carrying nested amount objects; the
// nested key is probed in priority order: min_variant_price, minVariantPrice,
// then min (and the max_* equivalents). Amounts may be JSON strings or
// numbers; anything that does not coerce to a float becomes 0.
//
// When the field is not valid JSON the decoder falls back to scanning the
// raw string for decimal tokens ("$5.00 - $15.00" style) and takes their
// min/max. A single token sets both bounds. No tokens means {0, 0}.
func ParsePriceRange(s string) PriceRange {
	if s == "" {
		return PriceRange{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return PriceRange{
			Min: coerceFloat(amountIn(obj, "min_variant_price", "minVariantPrice", "min")),
			Max: coerceFloat(amountIn(obj, "max_variant_price", "maxVariantPrice", "max")),
		}
	}
	if json.Valid([]byte(s)) {
		// Parsed as JSON but not as an object; the nested amount probes all
		// miss and the defaults win.
		return PriceRange{}
	}

	tokens := nums.ExtractDecimals(s)
	if len(tokens) > 0 {
		min, max := nums.MinMax(tokens)
		return PriceRange{Min: min, Max: max}
	}
	return PriceRange{}
}

// amountIn probes keys in priority order and returns the first non-empty
// "amount" value found under any of them.
func amountIn(obj map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var nested struct {
			Amount json.RawMessage `json:"amount"`
		}
		if err := json.Unmarshal(raw, &nested); err != nil || len(nested.Amount) == 0 {
			continue
		}
		var asString string
		if err := json.Unmarshal(nested.Amount, &asString); err == nil {
			if asString != "" {
				return asString
			}
			continue
		}
		var asNumber float64
		if err := json.Unmarshal(nested.Amount, &asNumber); err == nil && asNumber != 0 {
			return strconv.FormatFloat(asNumber, 'f', -1, 64)
		}
	}
	return ""
}

func coerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseImages decodes the images column. The structured form is a JSON array
// whose elements are either objects with a "url" property or plain strings;
// empty entries are dropped. A JSON value that is not an array yields no
// images. Anything that is not JSON at all is treated as a comma-separated
// URL list.
func ParseImages(s string) []string {
	if s == "" {
		return nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, raw := range arr {
			var str string
			if err := json.Unmarshal(raw, &str); err == nil {
				if str != "" {
					out = append(out, str)
				}
				continue
			}
			var obj struct {
				URL string `json:"url"`
			}
			if err := json.Unmarshal(raw, &obj); err == nil && obj.URL != "" {
				out = append(out, obj.URL)
			}
		}
		return out
	}
	if json.Valid([]byte(s)) {
		// Valid JSON but not an array (object, number, ...): no images.
		return nil
	}

	return splitTrimmed(s)
}

// ParseTags splits a comma-joined tag list, trimming each entry and dropping
// empties. Source order is preserved; there is no JSON form for tags on the
// best-effort path.
func ParseTags(s string) []string {
	if s == "" {
		return nil
	}
	return splitTrimmed(s)
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseBool reports whether s is the literal string "true", case-insensitively
// and without trimming. The strict validator accepts "1" and "yes" as well;
// that asymmetry is carried over from the source system deliberately, so do
// not widen this function to match.
func ParseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// parseIntPrefix parses the leading integer of s the way a display layer
// would ("12 units" -> 12). Whitespace is skipped, an optional sign is
// honored, and the first non-digit ends the number. When no digits are found
// the fallback is returned.
func parseIntPrefix(s string, fallback int) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return fallback
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return fallback
	}
	return n
}
