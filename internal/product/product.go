// Package product defines the canonical product record produced by CSV
// ingestion, the raw row view preserved for tabular display, and the
// best-effort mapper that turns arbitrary catalog exports into fully
// populated records.
//
// Two parsing paths exist on purpose. The mapper in this package favors
// availability: any malformed field falls back to a documented default and a
// whole-row failure yields a placeholder record, so a batch never shrinks.
// The strict path in internal/validate favors correctness and reports
// per-row diagnostics instead. The two share only the low-level decoders in
// decode.go.
package product

import "github.com/Dolat-Hamza/healf/internal/textutil"

// Row is a raw CSV row keyed by the original header names. Unknown columns
// are preserved verbatim so generic table views can render them even when
// product mapping ignores (or fails on) the row.
type Row map[string]string

// PriceRange is the decoded min/max price window of a product's variants.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Product is the canonical, always-fully-populated representation of one
// catalog item. Every field carries either a source value or its documented
// default; partial records never escape the mapper.
type Product struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	DescriptionHTML       string     `json:"descriptionHtml"`
	Vendor                string     `json:"vendor"`
	Handle                string     `json:"handle"`
	ProductType           string     `json:"productType"`
	Tags                  []string   `json:"tags"`
	Status                string     `json:"status"`
	PriceRange            PriceRange `json:"priceRange"`
	Images                []string   `json:"images"`
	FeaturedImage         string     `json:"featuredImage,omitempty"`
	TotalVariants         int        `json:"totalVariants"`
	TotalInventory        int        `json:"totalInventory"`
	IsGiftCard            bool       `json:"isGiftCard"`
	HasOutOfStockVariants bool       `json:"hasOutOfStockVariants"`
	CreatedAt             string     `json:"createdAt"`
	UpdatedAt             string     `json:"updatedAt"`
	PublishedAt           string     `json:"publishedAt,omitempty"`
	OnlineStoreURL        string     `json:"onlineStoreUrl,omitempty"`
	AdminGraphqlAPIID     string     `json:"adminGraphqlApiId"`
}

// AveragePrice is the midpoint of the price range. Facet filtering over
// FilterState and the synthetic "price" sort field both use this basis.
func (p Product) AveragePrice() float64 {
	return (p.PriceRange.Min + p.PriceRange.Max) / 2
}

// DescriptionText returns the plain-text form of the HTML description,
// falling back to the plain description when no HTML variant exists.
func (p Product) DescriptionText() string {
	if p.DescriptionHTML != "" {
		return textutil.PlainText(p.DescriptionHTML)
	}
	return p.Description
}

// SearchFilters is the flat filter shape used by the single-pass query path.
// Pointer fields distinguish "unconstrained" from a zero value. Price bounds
// here compare against the product's own Min and Max, not the average; the
// FilterState path in internal/query uses the average. Both bases are
// intentional and must not be unified.
type SearchFilters struct {
	Query                 string   `json:"query"`
	Vendor                string   `json:"vendor,omitempty"`
	ProductType           string   `json:"productType,omitempty"`
	MinPrice              *float64 `json:"minPrice,omitempty"`
	MaxPrice              *float64 `json:"maxPrice,omitempty"`
	Status                string   `json:"status,omitempty"`
	IsGiftCard            *bool    `json:"isGiftCard,omitempty"`
	HasOutOfStockVariants *bool    `json:"hasOutOfStockVariants,omitempty"`
}

// SearchResult is the paginated envelope returned to presentation callers.
type SearchResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}
