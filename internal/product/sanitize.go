package product

import "strings"

// Sanitize returns a cleaned copy of p for display and export: identity
// fields trimmed, handle and status lowercased, empty tags dropped, and
// negative price bounds clamped to zero. Decoded fields are left alone.
func Sanitize(p Product) Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Vendor = strings.TrimSpace(p.Vendor)
	p.Handle = strings.ToLower(strings.TrimSpace(p.Handle))
	p.ProductType = strings.TrimSpace(p.ProductType)
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))

	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags

	if p.PriceRange.Min < 0 {
		p.PriceRange.Min = 0
	}
	if p.PriceRange.Max < 0 {
		p.PriceRange.Max = 0
	}
	return p
}

// Slim strips the memory-heavy fields (HTML description, internal API id)
// from every record, returning a new slice. Grid and chart views that only
// render summaries use this to keep large uploads light.
func Slim(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		p.DescriptionHTML = ""
		p.AdminGraphqlAPIID = ""
		out[i] = p
	}
	return out
}
