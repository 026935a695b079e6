package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// Sort directions.
const (
	Asc  = "asc"
	Desc = "desc"
)

// SortOption names a sortable field, a direction, and the label shown in the
// sort menu. Field is either a product field name or one of the synthetic
// keys "price" (average of the price range) and "popularity".
type SortOption struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
	Label     string `json:"label"`
}

// SortOptions is the ordered sort menu. The first entry is the default.
func SortOptions() []SortOption {
	return []SortOption{
		{Field: "title", Direction: Asc, Label: "Name A-Z"},
		{Field: "title", Direction: Desc, Label: "Name Z-A"},
		{Field: "vendor", Direction: Asc, Label: "Vendor A-Z"},
		{Field: "vendor", Direction: Desc, Label: "Vendor Z-A"},
		{Field: "price", Direction: Asc, Label: "Price Low to High"},
		{Field: "price", Direction: Desc, Label: "Price High to Low"},
		{Field: "createdAt", Direction: Desc, Label: "Newest First"},
		{Field: "createdAt", Direction: Asc, Label: "Oldest First"},
		{Field: "totalInventory", Direction: Desc, Label: "Most in Stock"},
		{Field: "totalInventory", Direction: Asc, Label: "Least in Stock"},
		{Field: "totalVariants", Direction: Desc, Label: "Most Variants"},
		{Field: "totalVariants", Direction: Asc, Label: "Least Variants"},
		{Field: "popularity", Direction: Desc, Label: "Most Popular"},
	}
}

// DefaultSortOption is title ascending.
func DefaultSortOption() SortOption {
	return SortOptions()[0]
}

// SortKey renders the stable identifier of a field/direction pair, e.g.
// "price-asc". Used in URLs and the sort menu wiring.
func SortKey(field, direction string) string {
	return field + "-" + direction
}

// SortOptionByKey resolves a SortKey back to its menu entry.
func SortOptionByKey(key string) (SortOption, bool) {
	for _, opt := range SortOptions() {
		if SortKey(opt.Field, opt.Direction) == key {
			return opt, true
		}
	}
	return SortOption{}, false
}

// Sort orders products by the given option and returns a new slice; the
// input order is untouched. The sort is stable, so equal keys keep their
// relative order, and string fields compare with locale-aware collation
// rather than raw byte order.
func Sort(products []product.Product, opt SortOption) []product.Product {
	out := make([]product.Product, len(products))
	copy(out, products)

	desc := opt.Direction == Desc

	if numeric, ok := numericKey(opt.Field); ok {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := numeric(out[i]), numeric(out[j])
			if desc {
				return b < a
			}
			return a < b
		})
		return out
	}

	key := stringKey(opt.Field)
	coll := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := coll.CompareString(key(out[i]), key(out[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// numericKey maps a field name to its numeric extractor; ok is false for
// string-compared fields.
func numericKey(field string) (func(product.Product) float64, bool) {
	switch field {
	case "price":
		return product.Product.AveragePrice, true
	case "popularity":
		return PopularityScore, true
	case "createdAt":
		return func(p product.Product) float64 { return timestampMillis(p.CreatedAt) }, true
	case "updatedAt":
		return func(p product.Product) float64 { return timestampMillis(p.UpdatedAt) }, true
	case "publishedAt":
		return func(p product.Product) float64 { return timestampMillis(p.PublishedAt) }, true
	case "totalInventory":
		return func(p product.Product) float64 { return float64(p.TotalInventory) }, true
	case "totalVariants":
		return func(p product.Product) float64 { return float64(p.TotalVariants) }, true
	}
	return nil, false
}

// stringKey maps a field name to its string extractor. Unknown fields sort
// as empty strings, which keeps the input order under a stable sort.
func stringKey(field string) func(product.Product) string {
	switch field {
	case "title":
		return func(p product.Product) string { return p.Title }
	case "vendor":
		return func(p product.Product) string { return p.Vendor }
	case "productType":
		return func(p product.Product) string { return p.ProductType }
	case "handle":
		return func(p product.Product) string { return p.Handle }
	case "status":
		return func(p product.Product) string { return p.Status }
	case "id":
		return func(p product.Product) string { return p.ID }
	default:
		return func(product.Product) string { return "" }
	}
}

// timestampLayouts are tried in order when sorting by date fields.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timestampMillis parses a date field into epoch milliseconds. Empty or
// unparseable values sort as the epoch.
func timestampMillis(value string) float64 {
	if value == "" {
		return 0
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return float64(t.UnixMilli())
		}
	}
	return 0
}

// PopularityScore is the heuristic behind the "Most Popular" ordering. The
// weights favor well-stocked, active, fully in-stock products with imagery
// and a mid-range price.
func PopularityScore(p product.Product) float64 {
	score := float64(p.TotalInventory) * 0.1
	score += float64(p.TotalVariants) * 0.2
	if p.FeaturedImage != "" {
		score += 10
	}
	score += float64(len(p.Images)) * 2
	if p.Status == "active" {
		score += 20
	}
	if !p.HasOutOfStockVariants {
		score += 15
	}
	score += float64(len(p.Tags))
	if avg := p.AveragePrice(); avg > 0 && avg < 1000 {
		score += 5
	}
	return score
}
