package query

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// Suggestion types.
const (
	SuggestVendor      = "vendor"
	SuggestProductType = "productType"
	SuggestTag         = "tag"
	SuggestTitle       = "title"
)

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Per-type caps for the suggestion pool, and the overall response cap.
const (
	suggestVendorCap = 15
	suggestTypeCap   = 15
	suggestTagCap    = 20
	suggestTitleCap  = 30
	suggestTotalCap  = 50
)

// Suggest builds the autocomplete pool for a dataset: up to 15 vendors, 15
// product types, 20 tags, and 30 titles, deduplicated case-insensitively
// within each type and capped at 50 entries overall. Vendors, types, and
// tags keep dataset encounter order; titles are picked by descending
// inventory with shorter titles winning ties, so the best-stocked products
// surface first. The output is deterministic for a given dataset.
func Suggest(products []product.Product) []Suggestion {
	if len(products) == 0 {
		return nil
	}

	var suggestions []Suggestion
	seen := map[string]struct{}{}

	add := func(value, kind string) {
		value = strings.TrimSpace(value)
		if len(value) < 2 {
			return
		}
		key := kind + ":" + strings.ToLower(value)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, Suggestion{Value: value, Label: value, Type: kind})
	}

	vendors := lo.Uniq(lo.FilterMap(products, func(p product.Product, _ int) (string, bool) {
		v := strings.TrimSpace(p.Vendor)
		return v, v != ""
	}))
	for _, v := range head(vendors, suggestVendorCap) {
		add(v, SuggestVendor)
	}

	types := lo.Uniq(lo.FilterMap(products, func(p product.Product, _ int) (string, bool) {
		t := strings.TrimSpace(p.ProductType)
		return t, t != ""
	}))
	for _, t := range head(types, suggestTypeCap) {
		add(t, SuggestProductType)
	}

	tags := lo.Uniq(lo.FilterMap(lo.FlatMap(products, func(p product.Product, _ int) []string {
		return p.Tags
	}), func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	}))
	for _, tag := range head(tags, suggestTagCap) {
		add(tag, SuggestTag)
	}

	titled := lo.Filter(products, func(p product.Product, _ int) bool {
		return strings.TrimSpace(p.Title) != ""
	})
	sort.SliceStable(titled, func(i, j int) bool {
		if titled[i].TotalInventory != titled[j].TotalInventory {
			return titled[i].TotalInventory > titled[j].TotalInventory
		}
		return len(titled[i].Title) < len(titled[j].Title)
	})
	for _, p := range head(titled, suggestTitleCap) {
		add(p.Title, SuggestTitle)
	}

	return head(suggestions, suggestTotalCap)
}

// SuggestFor narrows the pool to entries whose value contains the query
// text, case-insensitively, preserving pool order. An empty query returns
// the whole pool.
func SuggestFor(products []product.Product, queryText string) []Suggestion {
	pool := Suggest(products)
	q := strings.ToLower(strings.TrimSpace(queryText))
	if q == "" {
		return pool
	}
	return lo.Filter(pool, func(s Suggestion, _ int) bool {
		return strings.Contains(strings.ToLower(s.Value), q)
	})
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
