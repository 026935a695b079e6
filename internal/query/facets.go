package query

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Dolat-Hamza/healf/internal/product"
)

// FilterOption is one selectable facet value with its population count.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceRangeFilter describes the bounds and slider step for the price facet.
type PriceRangeFilter struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// Facets is everything a filter panel needs to render itself from a dataset.
type Facets struct {
	Vendors      []FilterOption   `json:"vendors"`
	ProductTypes []FilterOption   `json:"productTypes"`
	Statuses     []FilterOption   `json:"statuses"`
	PriceRange   PriceRangeFilter `json:"priceRange"`
	Tags         []FilterOption   `json:"tags"`
}

// UniqueVendors returns the sorted distinct non-empty vendor names.
func UniqueVendors(products []product.Product) []string {
	return uniqueSorted(products, func(p product.Product) string { return p.Vendor })
}

// UniqueProductTypes returns the sorted distinct non-empty product types.
func UniqueProductTypes(products []product.Product) []string {
	return uniqueSorted(products, func(p product.Product) string { return p.ProductType })
}

// UniqueStatuses returns the sorted distinct non-empty statuses.
func UniqueStatuses(products []product.Product) []string {
	return uniqueSorted(products, func(p product.Product) string { return p.Status })
}

func uniqueSorted(products []product.Product, field func(product.Product) string) []string {
	values := lo.FilterMap(products, func(p product.Product, _ int) (string, bool) {
		v := field(p)
		return v, v != ""
	})
	values = lo.Uniq(values)
	sort.Strings(values)
	return values
}

// PriceBounds finds the lowest and highest positive price across all range
// endpoints. A dataset with no positive prices yields {0, 0}.
func PriceBounds(products []product.Product) product.PriceRange {
	var prices []float64
	for _, p := range products {
		if p.PriceRange.Min > 0 {
			prices = append(prices, p.PriceRange.Min)
		}
		if p.PriceRange.Max > 0 {
			prices = append(prices, p.PriceRange.Max)
		}
	}
	if len(prices) == 0 {
		return product.PriceRange{}
	}
	return product.PriceRange{Min: lo.Min(prices), Max: lo.Max(prices)}
}

// AllTags returns the sorted distinct tags across the dataset.
func AllTags(products []product.Product) []string {
	tags := lo.Uniq(lo.FlatMap(products, func(p product.Product, _ int) []string {
		return p.Tags
	}))
	sort.Strings(tags)
	return tags
}

// statusCaser capitalizes status labels ("active" -> "Active") without
// touching the rest of the word.
var statusCaser = cases.Title(language.English, cases.NoLower)

// BuildFacets computes the filter panel model for a dataset: counted vendor,
// type, and status options in alphabetical order, integer price bounds with
// a slider step of roughly a hundredth of the span, and the twenty most
// frequent tags by descending count (ties alphabetical).
func BuildFacets(products []product.Product) Facets {
	bounds := PriceBounds(products)

	vendorCounts := lo.CountValuesBy(products, func(p product.Product) string { return p.Vendor })
	typeCounts := lo.CountValuesBy(products, func(p product.Product) string { return p.ProductType })
	statusCounts := lo.CountValuesBy(products, func(p product.Product) string { return p.Status })
	tagCounts := lo.CountValues(lo.FlatMap(products, func(p product.Product, _ int) []string {
		return p.Tags
	}))

	tags := lo.MapToSlice(tagCounts, func(tag string, count int) FilterOption {
		return FilterOption{Value: tag, Label: tag, Count: count}
	})
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Value < tags[j].Value
	})
	if len(tags) > 20 {
		tags = tags[:20]
	}

	step := int(math.Floor((bounds.Max - bounds.Min) / 100))
	if step < 1 {
		step = 1
	}

	return Facets{
		Vendors: lo.Map(UniqueVendors(products), func(v string, _ int) FilterOption {
			return FilterOption{Value: v, Label: v, Count: vendorCounts[v]}
		}),
		ProductTypes: lo.Map(UniqueProductTypes(products), func(t string, _ int) FilterOption {
			return FilterOption{Value: t, Label: t, Count: typeCounts[t]}
		}),
		Statuses: lo.Map(UniqueStatuses(products), func(s string, _ int) FilterOption {
			return FilterOption{Value: s, Label: statusCaser.String(s), Count: statusCounts[s]}
		}),
		PriceRange: PriceRangeFilter{
			Min:  int(math.Floor(bounds.Min)),
			Max:  int(math.Ceil(bounds.Max)),
			Step: step,
		},
		Tags: tags,
	}
}
