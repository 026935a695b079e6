package query

import (
	"testing"

	"github.com/Dolat-Hamza/healf/internal/product"
)

func TestSort_PriceUsesAverage(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{ID: "mid", PriceRange: product.PriceRange{Min: 10, Max: 30}},  // avg 20
		{ID: "high", PriceRange: product.PriceRange{Min: 20, Max: 40}}, // avg 30
		{ID: "low", PriceRange: product.PriceRange{Min: 5, Max: 15}},   // avg 10
	}

	got := Sort(catalog, SortOption{Field: "price", Direction: Asc})
	assertIDs(t, got, "low", "mid", "high")

	got = Sort(catalog, SortOption{Field: "price", Direction: Desc})
	assertIDs(t, got, "high", "mid", "low")

	// Input untouched.
	assertIDs(t, catalog, "mid", "high", "low")
}

func TestSort_TitleIsCaseAware(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "cherry"},
	}
	got := Sort(catalog, SortOption{Field: "title", Direction: Asc})
	assertIDs(t, got, "2", "1", "3")
}

func TestSort_DateFields(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{ID: "newest", CreatedAt: "2024-06-01T10:00:00Z"},
		{ID: "oldest", CreatedAt: "2023-01-15"},
		{ID: "middle", CreatedAt: "2024-01-15 08:30:00"},
		{ID: "undated", CreatedAt: "not a date"},
	}

	got := Sort(catalog, SortOption{Field: "createdAt", Direction: Desc})
	assertIDs(t, got, "newest", "middle", "oldest", "undated")

	// Unparseable dates sort as the epoch, so they lead ascending order.
	got = Sort(catalog, SortOption{Field: "createdAt", Direction: Asc})
	assertIDs(t, got, "undated", "oldest", "middle", "newest")
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	got := Sort(catalog, SortOption{Field: "bogus", Direction: Asc})
	assertIDs(t, got, "1", "2", "3")
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{ID: "a", TotalInventory: 5},
		{ID: "b", TotalInventory: 5},
		{ID: "c", TotalInventory: 1},
	}
	got := Sort(catalog, SortOption{Field: "totalInventory", Direction: Desc})
	assertIDs(t, got, "a", "b", "c")
}

func TestPopularityScore(t *testing.T) {
	t.Parallel()

	p := product.Product{
		TotalInventory:        50, // 5
		TotalVariants:         10, // 2
		FeaturedImage:         "https://a/1.jpg",
		Images:                []string{"a", "b", "c"}, // 6
		Status:                "active",
		HasOutOfStockVariants: false,
		Tags:                  []string{"x", "y"},
		PriceRange:            product.PriceRange{Min: 10, Max: 30},
	}
	// 5 + 2 + 10 + 6 + 20 + 15 + 2 + 5
	if got := PopularityScore(p); got != 65 {
		t.Fatalf("PopularityScore = %v, want 65", got)
	}

	if got := PopularityScore(product.Product{HasOutOfStockVariants: true}); got != 0 {
		t.Fatalf("bare product score = %v, want 0", got)
	}
}

func TestSortOptionsMenu(t *testing.T) {
	t.Parallel()

	menu := SortOptions()
	if len(menu) != 13 {
		t.Fatalf("menu has %d entries, want 13", len(menu))
	}
	if def := DefaultSortOption(); def.Label != "Name A-Z" {
		t.Fatalf("default = %+v", def)
	}

	if got := SortKey("price", Asc); got != "price-asc" {
		t.Fatalf("SortKey = %q", got)
	}
	opt, ok := SortOptionByKey("popularity-desc")
	if !ok || opt.Label != "Most Popular" {
		t.Fatalf("SortOptionByKey = %+v, %v", opt, ok)
	}
	if _, ok := SortOptionByKey("bogus-asc"); ok {
		t.Fatal("unknown key should not resolve")
	}
}
