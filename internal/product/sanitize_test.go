package product

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	p := Sanitize(Product{
		ID:          " p1 ",
		Title:       "  Tea ",
		Handle:      " Green-Tea ",
		Status:      " ACTIVE ",
		Tags:        []string{" a ", "", "b"},
		PriceRange:  PriceRange{Min: -5, Max: 10},
		Vendor:      " Acme ",
		ProductType: " Drinks ",
	})

	if p.ID != "p1" || p.Title != "Tea" || p.Vendor != "Acme" || p.ProductType != "Drinks" {
		t.Fatalf("trim failed: %+v", p)
	}
	if p.Handle != "green-tea" || p.Status != "active" {
		t.Fatalf("lowercase failed: handle=%q status=%q", p.Handle, p.Status)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "a" || p.Tags[1] != "b" {
		t.Fatalf("tags = %v", p.Tags)
	}
	if p.PriceRange.Min != 0 || p.PriceRange.Max != 10 {
		t.Fatalf("price clamp failed: %+v", p.PriceRange)
	}
}

func TestSlim(t *testing.T) {
	t.Parallel()

	in := []Product{{
		Title:             "Tea",
		DescriptionHTML:   "<p>big</p>",
		AdminGraphqlAPIID: "gid://x",
	}}
	out := Slim(in)

	if out[0].DescriptionHTML != "" || out[0].AdminGraphqlAPIID != "" {
		t.Fatalf("heavy fields not stripped: %+v", out[0])
	}
	if out[0].Title != "Tea" {
		t.Fatalf("Title lost: %+v", out[0])
	}
	if in[0].DescriptionHTML == "" {
		t.Fatal("input slice was mutated")
	}
}
