package query

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Dolat-Hamza/healf/internal/product"
)

func TestUniqueVendors(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{Vendor: "Zeta"},
		{Vendor: "Acme"},
		{Vendor: ""},
		{Vendor: "Acme"},
	}
	got := UniqueVendors(catalog)
	if !reflect.DeepEqual(got, []string{"Acme", "Zeta"}) {
		t.Fatalf("UniqueVendors = %v", got)
	}
}

func TestPriceBounds(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{PriceRange: product.PriceRange{Min: 5, Max: 15}},
		{PriceRange: product.PriceRange{Min: 0, Max: 80}},
		{PriceRange: product.PriceRange{Min: 2, Max: 0}},
	}
	got := PriceBounds(catalog)
	if got.Min != 2 || got.Max != 80 {
		t.Fatalf("PriceBounds = %+v", got)
	}

	// Zero endpoints never count as prices.
	if got := PriceBounds([]product.Product{{}}); got.Min != 0 || got.Max != 0 {
		t.Fatalf("empty bounds = %+v", got)
	}
}

func TestAllTags(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{Tags: []string{"tea", "organic"}},
		{Tags: []string{"organic", "roasted"}},
	}
	got := AllTags(catalog)
	if !reflect.DeepEqual(got, []string{"organic", "roasted", "tea"}) {
		t.Fatalf("AllTags = %v", got)
	}
}

func TestBuildFacets(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	facets := BuildFacets(catalog)

	if len(facets.Vendors) != 2 || facets.Vendors[0].Value != "Acme" || facets.Vendors[0].Count != 2 {
		t.Fatalf("vendors = %+v", facets.Vendors)
	}
	if len(facets.ProductTypes) != 2 || facets.ProductTypes[0].Value != "Beverages" {
		t.Fatalf("types = %+v", facets.ProductTypes)
	}

	// Status labels are title-cased for display, values stay raw.
	if facets.Statuses[0].Value != "active" || facets.Statuses[0].Label != "Active" {
		t.Fatalf("statuses = %+v", facets.Statuses)
	}

	// Prices span 5..30, so bounds floor/ceil to 5 and 30 with minimum step 1.
	if facets.PriceRange.Min != 5 || facets.PriceRange.Max != 30 || facets.PriceRange.Step != 1 {
		t.Fatalf("price range = %+v", facets.PriceRange)
	}
}

func TestBuildFacets_TagsTopTwentyByCount(t *testing.T) {
	t.Parallel()

	var catalog []product.Product
	// 25 distinct tags; tag-00 appears on three products, tag-01 on two.
	for i := 0; i < 25; i++ {
		catalog = append(catalog, product.Product{Tags: []string{fmt.Sprintf("tag-%02d", i)}})
	}
	catalog = append(catalog,
		product.Product{Tags: []string{"tag-00", "tag-01"}},
		product.Product{Tags: []string{"tag-00"}},
	)

	facets := BuildFacets(catalog)
	if len(facets.Tags) != 20 {
		t.Fatalf("got %d tags, want 20", len(facets.Tags))
	}
	if facets.Tags[0].Value != "tag-00" || facets.Tags[0].Count != 3 {
		t.Fatalf("top tag = %+v", facets.Tags[0])
	}
	if facets.Tags[1].Value != "tag-01" || facets.Tags[1].Count != 2 {
		t.Fatalf("second tag = %+v", facets.Tags[1])
	}
	// Ties break alphabetically.
	if facets.Tags[2].Value != "tag-02" {
		t.Fatalf("third tag = %+v", facets.Tags[2])
	}
}

func TestBuildFacets_StepScalesWithSpan(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{PriceRange: product.PriceRange{Min: 100, Max: 100}},
		{PriceRange: product.PriceRange{Min: 5000, Max: 5000}},
	}
	facets := BuildFacets(catalog)
	if facets.PriceRange.Step != 49 {
		t.Fatalf("step = %d, want 49", facets.PriceRange.Step)
	}
}
