package product

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dolat-Hamza/healf/internal/errs"
)

// Defaults applied by the mapper when a source field is missing or empty.
const (
	DefaultVendor      = "Unknown Vendor"
	DefaultProductType = "General"
	DefaultStatus      = "active"
)

// aliases lists the header spellings probed for each canonical field, in
// priority order. Catalog exports disagree on casing and naming (Shopify
// bulk exports shout in upper case, hand-edited files tend to lower case),
// so the table is data rather than scattered conditionals. The first header
// that is present with a non-empty value wins.
var aliases = map[string][]string{
	"id":              {"ID", "id"},
	"title":           {"TITLE", "title"},
	"description":     {"DESCRIPTION", "description"},
	"descriptionHtml": {"DESCRIPTION_HTML", "BODY_HTML", "description_html", "body_html"},
	"vendor":          {"VENDOR", "vendor"},
	"handle":          {"HANDLE", "handle"},
	"productType":     {"PRODUCT_TYPE", "product_type", "type"},
	"tags":            {"TAGS", "tags"},
	"status":          {"STATUS", "status"},
	"priceRange":      {"PRICE_RANGE_V2", "PRICE_RANGE", "price_range_v2", "price_range"},
	"images":          {"IMAGES", "images"},
	"featuredImage":   {"FEATURED_IMAGE", "featured_image"},
	"totalVariants":   {"TOTAL_VARIANTS", "total_variants"},
	"totalInventory":  {"TOTAL_INVENTORY", "total_inventory"},
	"isGiftCard":      {"IS_GIFT_CARD", "is_gift_card"},
	"hasOutOfStock":   {"HAS_OUT_OF_STOCK_VARIANTS", "has_out_of_stock_variants"},
	"createdAt":       {"CREATED_AT", "created_at"},
	"updatedAt":       {"UPDATED_AT", "updated_at"},
	"publishedAt":     {"PUBLISHED_AT", "published_at"},
	"onlineStoreUrl":  {"ONLINE_STORE_URL", "online_store_url"},
	"adminGraphqlId":  {"ADMIN_GRAPHQL_API_ID", "admin_graphql_api_id"},
}

// Aliases returns the probe list for a canonical field. It exists so tests
// and documentation endpoints can surface the table; the returned slice must
// not be modified.
func Aliases(field string) []string { return aliases[field] }

func (r Row) lookup(field string) string {
	for _, key := range aliases[field] {
		if v, ok := r[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (r Row) lookupOr(field, fallback string) string {
	if v := r.lookup(field); v != "" {
		return v
	}
	return fallback
}

// MapRow converts one raw row into a canonical Product. index is the
// zero-based data-row position and seeds the synthesized id, handle, and
// title fallbacks. Every field of the result is populated.
func MapRow(row Row, index int) Product {
	return Product{
		ID:                    row.lookupOr("id", fmt.Sprintf("product-%d", index)),
		Title:                 row.lookupOr("title", fmt.Sprintf("Product %d", index+1)),
		Description:           row.lookup("description"),
		DescriptionHTML:       row.lookup("descriptionHtml"),
		Vendor:                row.lookupOr("vendor", DefaultVendor),
		Handle:                row.lookupOr("handle", fmt.Sprintf("product-%d", index)),
		ProductType:           row.lookupOr("productType", DefaultProductType),
		Tags:                  ParseTags(row.lookup("tags")),
		Status:                strings.ToLower(row.lookupOr("status", DefaultStatus)),
		PriceRange:            ParsePriceRange(row.lookup("priceRange")),
		Images:                ParseImages(row.lookup("images")),
		FeaturedImage:         row.lookup("featuredImage"),
		TotalVariants:         parseIntPrefix(row.lookup("totalVariants"), 1),
		TotalInventory:        parseIntPrefix(row.lookup("totalInventory"), 0),
		IsGiftCard:            ParseBool(row.lookup("isGiftCard")),
		HasOutOfStockVariants: ParseBool(row.lookup("hasOutOfStock")),
		CreatedAt:             row.lookup("createdAt"),
		UpdatedAt:             row.lookup("updatedAt"),
		PublishedAt:           row.lookup("publishedAt"),
		OnlineStoreURL:        row.lookup("onlineStoreUrl"),
		AdminGraphqlAPIID:     row.lookup("adminGraphqlId"),
	}
}

// Placeholder returns the fully-defaulted record substituted for a row that
// could not be mapped at all.
func Placeholder(index int) Product {
	return Product{
		ID:            fmt.Sprintf("product-%d", index),
		Title:         fmt.Sprintf("Product %d", index+1),
		Vendor:        DefaultVendor,
		Handle:        fmt.Sprintf("product-%d", index),
		ProductType:   DefaultProductType,
		Status:        DefaultStatus,
		TotalVariants: 1,
	}
}

// MapRows converts a batch of raw rows into canonical products.
//
// The output always has exactly len(rows) elements in source order. A row
// that panics mid-mapping is replaced by Placeholder and reported through
// logger; a single bad row never aborts the batch. An empty batch is the one
// fatal condition, reported as an EMPTY_FILE-class error so callers can
// distinguish "nothing to map" from per-row recovery.
func MapRows(rows []Row, logger *slog.Logger) ([]Product, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(rows) == 0 {
		return nil, errs.CSV("no data found in CSV file", errs.CodeEmptyFile)
	}

	out := make([]Product, len(rows))
	for i, row := range rows {
		out[i] = mapRecovered(row, i, logger)
	}
	return out, nil
}

func mapRecovered(row Row, index int, logger *slog.Logger) (p Product) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("row mapping failed, substituting placeholder",
				"row", index, "panic", fmt.Sprint(r))
			p = Placeholder(index)
		}
	}()
	return MapRow(row, index)
}
