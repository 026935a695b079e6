package query

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Dolat-Hamza/healf/internal/product"
)

func TestSuggest_PoolShape(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	pool := Suggest(catalog)

	byType := map[string][]string{}
	for _, s := range pool {
		byType[s.Type] = append(byType[s.Type], s.Value)
	}
	if !reflect.DeepEqual(byType[SuggestVendor], []string{"Acme", "Bros"}) {
		t.Fatalf("vendors = %v", byType[SuggestVendor])
	}
	if !reflect.DeepEqual(byType[SuggestProductType], []string{"Beverages", "Kitchen"}) {
		t.Fatalf("types = %v", byType[SuggestProductType])
	}
	if !reflect.DeepEqual(byType[SuggestTag], []string{"organic", "tea"}) {
		t.Fatalf("tags = %v", byType[SuggestTag])
	}
	// All inventories are zero, so title ties break by length.
	if !reflect.DeepEqual(byType[SuggestTitle], []string{"Mug", "Green Tea", "Coffee Beans"}) {
		t.Fatalf("titles = %v", byType[SuggestTitle])
	}
}

func TestSuggest_TitlesRankByInventory(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{Title: "Low Stock", TotalInventory: 1},
		{Title: "High Stock", TotalInventory: 100},
	}
	pool := Suggest(catalog)
	if pool[0].Value != "High Stock" {
		t.Fatalf("pool = %+v", pool)
	}
}

func TestSuggest_DedupAndShortValues(t *testing.T) {
	t.Parallel()

	catalog := []product.Product{
		{Title: "Tea", Vendor: "acme"},
		{Title: "TEA", Vendor: "Acme"},
		{Title: "X"}, // single-rune values never suggest
	}
	pool := Suggest(catalog)

	var titles, vendors int
	for _, s := range pool {
		switch s.Type {
		case SuggestTitle:
			titles++
		case SuggestVendor:
			vendors++
		}
	}
	if titles != 1 {
		t.Fatalf("titles deduplicate case-insensitively, got %d", titles)
	}
	if vendors != 1 {
		t.Fatalf("vendors = %d, want 1", vendors)
	}
}

func TestSuggest_TotalCap(t *testing.T) {
	t.Parallel()

	var catalog []product.Product
	for i := 0; i < 40; i++ {
		catalog = append(catalog, product.Product{
			Title:       fmt.Sprintf("Product Number %02d", i),
			Vendor:      fmt.Sprintf("Vendor %02d", i),
			ProductType: fmt.Sprintf("Type %02d", i),
			Tags:        []string{fmt.Sprintf("tag-%02d", i)},
		})
	}
	pool := Suggest(catalog)
	if len(pool) != 50 {
		t.Fatalf("pool size = %d, want the 50 cap", len(pool))
	}
	// Per-type caps applied first: 15 vendors, then 15 types, then 20 tags
	// fill the response before any title can.
	if pool[0].Type != SuggestVendor || pool[49].Type != SuggestTag {
		t.Fatalf("pool boundaries = %s..%s", pool[0].Type, pool[49].Type)
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()
	first := Suggest(catalog)
	second := Suggest(catalog)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("suggestion pool should be stable across calls")
	}
}

func TestSuggest_Empty(t *testing.T) {
	t.Parallel()

	if got := Suggest(nil); got != nil {
		t.Fatalf("Suggest(nil) = %v", got)
	}
}

func TestSuggestFor(t *testing.T) {
	t.Parallel()

	catalog := sampleCatalog()

	got := SuggestFor(catalog, "tea")
	for _, s := range got {
		if s.Value != "tea" && s.Value != "Green Tea" {
			t.Fatalf("unexpected suggestion %+v", s)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}

	// Empty query returns the full pool.
	if full := SuggestFor(catalog, "  "); len(full) != len(Suggest(catalog)) {
		t.Fatal("empty query should return the whole pool")
	}
}
