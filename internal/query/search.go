// Package query is the in-memory engine over a decoded catalog: text search,
// faceted filtering, ordering, pagination, and incremental chunked views.
// All operations take and return product slices; none of them mutates its
// input, so callers can layer them in any order and re-run them freely over
// a shared dataset.
package query

import (
	"strings"

	"github.com/Dolat-Hamza/healf/internal/fuzzy"
	"github.com/Dolat-Hamza/healf/internal/product"
)

// SearchOptions selects the text-matching strategy for Search.
type SearchOptions struct {
	// UseFuzzy switches from exact-substring matching to scored approximate
	// matching over a fixed field set.
	UseFuzzy bool

	// FuzzyThreshold overrides the fuzzy cutoff when > 0.
	FuzzyThreshold float64
}

// fuzzyKeys are the fields scored in fuzzy mode. Note the exact path also
// scans descriptionHtml and tags; the fuzzy path does not.
var fuzzyKeys = []string{"title", "description", "vendor", "productType", "handle"}

// Search narrows products by the query text and every set field of filters,
// in that order.
//
// The exact path keeps a product when the lowercased query occurs in its
// title, description, descriptionHtml, vendor, productType, handle, or any
// tag. The fuzzy path delegates to the fuzzy scorer and keeps its score
// ordering. Facet fields compare case-insensitively; MinPrice checks the
// range minimum and MaxPrice the range maximum, each against its own bound.
func Search(products []product.Product, filters product.SearchFilters, opt SearchOptions) []product.Product {
	out := products

	if filters.Query != "" {
		q := strings.TrimSpace(filters.Query)
		if opt.UseFuzzy {
			results := fuzzy.Search(products, q, fuzzy.Options{
				Threshold: opt.FuzzyThreshold,
				Keys:      fuzzyKeys,
			})
			matched := make([]product.Product, len(results))
			for i, r := range results {
				matched[i] = r.Item
			}
			out = matched
		} else {
			ql := strings.ToLower(q)
			out = filter(out, func(p product.Product) bool {
				return containsFold(p.Title, ql) ||
					containsFold(p.Description, ql) ||
					containsFold(p.DescriptionHTML, ql) ||
					containsFold(p.Vendor, ql) ||
					containsFold(p.ProductType, ql) ||
					containsFold(p.Handle, ql) ||
					anyTagContains(p.Tags, ql)
			})
		}
	}

	if filters.Vendor != "" {
		out = filter(out, func(p product.Product) bool {
			return strings.EqualFold(p.Vendor, filters.Vendor)
		})
	}
	if filters.ProductType != "" {
		out = filter(out, func(p product.Product) bool {
			return strings.EqualFold(p.ProductType, filters.ProductType)
		})
	}
	if filters.MinPrice != nil {
		out = filter(out, func(p product.Product) bool {
			return p.PriceRange.Min >= *filters.MinPrice
		})
	}
	if filters.MaxPrice != nil {
		out = filter(out, func(p product.Product) bool {
			return p.PriceRange.Max <= *filters.MaxPrice
		})
	}
	if filters.Status != "" {
		out = filter(out, func(p product.Product) bool {
			return strings.EqualFold(p.Status, filters.Status)
		})
	}
	if filters.IsGiftCard != nil {
		out = filter(out, func(p product.Product) bool {
			return p.IsGiftCard == *filters.IsGiftCard
		})
	}
	if filters.HasOutOfStockVariants != nil {
		out = filter(out, func(p product.Product) bool {
			return p.HasOutOfStockVariants == *filters.HasOutOfStockVariants
		})
	}

	return out
}

// SearchSorted runs Search then orders the survivors. Fuzzy score order from
// the query phase is replaced by the sort when one is given.
func SearchSorted(products []product.Product, filters product.SearchFilters, sortOpt *SortOption, opt SearchOptions) []product.Product {
	out := Search(products, filters, opt)
	if sortOpt != nil {
		out = Sort(out, *sortOpt)
	}
	return out
}

// filter returns the subset of products satisfying keep, always as a fresh
// slice so chained passes never alias the caller's backing array.
func filter(products []product.Product, keep func(product.Product) bool) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

func anyTagContains(tags []string, lowered string) bool {
	for _, tag := range tags {
		if containsFold(tag, lowered) {
			return true
		}
	}
	return false
}
