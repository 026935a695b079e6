package query

import (
	"math"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// FilterState is the multi-select filter panel: any number of vendors, types,
// statuses, and tags, a price window over the average price, and optional
// boolean toggles. Unlike product.SearchFilters it matches set membership
// case-sensitively and prices against the average of the range.
type FilterState struct {
	Vendors      []string `json:"vendors"`
	ProductTypes []string `json:"productTypes"`
	Statuses     []string `json:"statuses"`
	Tags         []string `json:"tags"`

	PriceRange product.PriceRange `json:"priceRange"`

	IsGiftCard            *bool `json:"isGiftCard,omitempty"`
	HasOutOfStockVariants *bool `json:"hasOutOfStockVariants,omitempty"`
}

// ClearFilters is the unconstrained state: empty selections and a price
// window open to +Inf.
func ClearFilters() FilterState {
	return FilterState{
		Vendors:      []string{},
		ProductTypes: []string{},
		Statuses:     []string{},
		Tags:         []string{},
		PriceRange:   product.PriceRange{Min: 0, Max: math.Inf(1)},
	}
}

// ApplyFilters keeps products passing every populated criterion. Empty
// selection lists pass everything. The price window is inclusive and tested
// against the average of the product's price range; a zero Max is treated as
// unbounded so a zero-value FilterState filters nothing.
func ApplyFilters(products []product.Product, filters FilterState) []product.Product {
	maxPrice := filters.PriceRange.Max
	if maxPrice == 0 {
		maxPrice = math.Inf(1)
	}

	return filter(products, func(p product.Product) bool {
		if len(filters.Vendors) > 0 && !containsString(filters.Vendors, p.Vendor) {
			return false
		}
		if len(filters.ProductTypes) > 0 && !containsString(filters.ProductTypes, p.ProductType) {
			return false
		}
		if len(filters.Statuses) > 0 && !containsString(filters.Statuses, p.Status) {
			return false
		}

		avg := p.AveragePrice()
		if avg < filters.PriceRange.Min || avg > maxPrice {
			return false
		}

		if filters.IsGiftCard != nil && p.IsGiftCard != *filters.IsGiftCard {
			return false
		}
		if filters.HasOutOfStockVariants != nil && p.HasOutOfStockVariants != *filters.HasOutOfStockVariants {
			return false
		}

		if len(filters.Tags) > 0 && !anyStringIn(filters.Tags, p.Tags) {
			return false
		}
		return true
	})
}

// ActiveFilterCount reports how many filter groups are engaged; used for the
// "N filters" badge. The price window does not count as a group.
func ActiveFilterCount(filters FilterState) int {
	count := 0
	if len(filters.Vendors) > 0 {
		count++
	}
	if len(filters.ProductTypes) > 0 {
		count++
	}
	if len(filters.Statuses) > 0 {
		count++
	}
	if filters.IsGiftCard != nil {
		count++
	}
	if filters.HasOutOfStockVariants != nil {
		count++
	}
	if len(filters.Tags) > 0 {
		count++
	}
	return count
}

// FiltersFromState projects a FilterState onto the single-select
// product.SearchFilters: a group carries over only when exactly one value is
// selected, and price bounds only when they actually constrain.
func FiltersFromState(queryText string, state FilterState) product.SearchFilters {
	filters := product.SearchFilters{
		Query:                 queryText,
		IsGiftCard:            state.IsGiftCard,
		HasOutOfStockVariants: state.HasOutOfStockVariants,
	}
	if len(state.Vendors) == 1 {
		filters.Vendor = state.Vendors[0]
	}
	if len(state.ProductTypes) == 1 {
		filters.ProductType = state.ProductTypes[0]
	}
	if len(state.Statuses) == 1 {
		filters.Status = state.Statuses[0]
	}
	if state.PriceRange.Min > 0 {
		minPrice := state.PriceRange.Min
		filters.MinPrice = &minPrice
	}
	if state.PriceRange.Max > 0 && !math.IsInf(state.PriceRange.Max, 1) {
		maxPrice := state.PriceRange.Max
		filters.MaxPrice = &maxPrice
	}
	return filters
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// anyStringIn reports whether any of wanted appears in values.
func anyStringIn(wanted, values []string) bool {
	for _, w := range wanted {
		if containsString(values, w) {
			return true
		}
	}
	return false
}
