// Package fuzzy implements the approximate string matching used by search
// and autosuggestion: substring-aware similarity scoring with a Levenshtein
// fallback, plus exact-substring match indices for highlighting.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// DefaultThreshold is the minimum similarity score a record must reach on
// its best field to be retained.
const DefaultThreshold = 0.3

// Options configures a fuzzy search run.
type Options struct {
	// Threshold overrides DefaultThreshold when > 0.
	Threshold float64

	// Keys names the product fields scored per record. When empty, title,
	// description, vendor, and productType are scored.
	Keys []string
}

// Match locates one scored field of a result for highlight rendering.
type Match struct {
	Key     string  `json:"key"`
	Value   string  `json:"value"`
	Indices [][]int `json:"indices"`
}

// Result pairs a retained product with its best per-field score.
type Result struct {
	Item    product.Product `json:"item"`
	Score   float64         `json:"score"`
	Matches []Match         `json:"matches"`
}

// LevenshteinDistance computes the classic edit distance between two strings
// with the full dynamic-programming matrix over runes. Costs are 1 for
// insert, delete, and substitute.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min3(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// SimilarityScore rates how well query matches text, in [0, 1].
//
// A case-insensitive substring hit scores 1 − 0.1·(|query|/|text|): an exact
// full match lands just below 1 and a short query inside long text just
// under 1. Otherwise the score is the Levenshtein distance normalized by the
// longer length, floored at 0. Empty inputs score 0.
func SimilarityScore(query, text string) float64 {
	if query == "" || text == "" {
		return 0
	}
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.Contains(t, q) {
		return 1 - (float64(len([]rune(q)))/float64(len([]rune(t))))*0.1
	}

	distance := LevenshteinDistance(q, t)
	maxLen := len([]rune(q))
	if l := len([]rune(t)); l > maxLen {
		maxLen = l
	}
	score := 1 - float64(distance)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// MatchIndices returns the [start, end] rune index pairs (inclusive) of all
// non-overlapping case-insensitive occurrences of query in text. This is the
// exact-substring scan used for highlighting; it is independent of the
// scoring path. Occurrences are found left to right, restarting one rune
// past each hit.
func MatchIndices(query, text string) [][]int {
	var indices [][]int
	if query == "" {
		return indices
	}
	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(text))

	for start := 0; start+len(q) <= len(t); {
		if runesEqual(t[start:start+len(q)], q) {
			indices = append(indices, []int{start, start + len(q) - 1})
			start++
			continue
		}
		start++
	}
	return dropOverlapping(indices)
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dropOverlapping keeps the leftmost of any overlapping spans so highlight
// rendering never nests marks.
func dropOverlapping(indices [][]int) [][]int {
	out := indices[:0]
	last := -1
	for _, span := range indices {
		if span[0] > last {
			out = append(out, span)
			last = span[1]
		}
	}
	return out
}

// fieldValue resolves the scored fields by name. Unknown keys score as
// empty strings.
func fieldValue(p product.Product, key string) string {
	switch key {
	case "title":
		return p.Title
	case "description":
		return p.Description
	case "descriptionHtml":
		return p.DescriptionHTML
	case "vendor":
		return p.Vendor
	case "productType":
		return p.ProductType
	case "handle":
		return p.Handle
	case "status":
		return p.Status
	default:
		return ""
	}
}

// Search scores every product against query and returns those whose best
// field meets the threshold, ordered by descending score. An empty query
// retains everything at score 1 in source order.
func Search(products []product.Product, query string, opt Options) []Result {
	threshold := opt.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	keys := opt.Keys
	if len(keys) == 0 {
		keys = []string{"title", "description", "vendor", "productType"}
	}

	if strings.TrimSpace(query) == "" {
		out := make([]Result, len(products))
		for i, p := range products {
			out[i] = Result{Item: p, Score: 1}
		}
		return out
	}

	var results []Result
	for _, p := range products {
		var best float64
		var matches []Match
		for _, key := range keys {
			value := fieldValue(p, key)
			score := SimilarityScore(query, value)
			if score > best {
				best = score
			}
			if score > threshold {
				if indices := MatchIndices(query, value); len(indices) > 0 {
					matches = append(matches, Match{Key: key, Value: value, Indices: indices})
				}
			}
		}
		if best >= threshold {
			results = append(results, Result{Item: p, Score: best, Matches: matches})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Highlight wraps each matched span of text in a <mark> element. Indices
// must be the non-overlapping pairs produced by MatchIndices.
func Highlight(text string, indices [][]int) string {
	if len(indices) == 0 {
		return text
	}
	runes := []rune(text)
	var b strings.Builder
	last := 0
	for _, span := range indices {
		start, end := span[0], span[1]
		if start < last || end >= len(runes) {
			continue
		}
		b.WriteString(string(runes[last:start]))
		b.WriteString("<mark>")
		b.WriteString(string(runes[start : end+1]))
		b.WriteString("</mark>")
		last = end + 1
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}
