package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/product"
)

// rowToProduct is the strict per-row decoder. Unlike the best-effort mapper
// it expects the structured columns (PRICE_RANGE_V2, IMAGES, TAGS) to be
// JSON and, with ValidateDataTypes on, turns any malformed JSON or number
// into a *errs.ValidationError that invalidates the row. With the switch
// off, failures default silently like the mapper.
func rowToProduct(row product.Row, headers []string, opt Options) (product.Product, error) {
	field := func(name string) string {
		if h := findHeader(headers, name); h != "" {
			return row[h]
		}
		return ""
	}

	priceRaw, err := parseJSONField(field("PRICE_RANGE_V2"), "PRICE_RANGE_V2", opt)
	if err != nil {
		return product.Product{}, err
	}
	imagesRaw, err := parseJSONField(field("IMAGES"), "IMAGES", opt)
	if err != nil {
		return product.Product{}, err
	}
	tagsRaw, err := parseJSONField(field("TAGS"), "TAGS", opt)
	if err != nil {
		return product.Product{}, err
	}

	minPrice, err := parseNumberField(jsonBound(priceRaw, "min"), 0, "PRICE_RANGE_V2.min", opt)
	if err != nil {
		return product.Product{}, err
	}
	maxPrice, err := parseNumberField(jsonBound(priceRaw, "max"), 0, "PRICE_RANGE_V2.max", opt)
	if err != nil {
		return product.Product{}, err
	}
	totalVariants, err := parseNumberField(field("TOTAL_VARIANTS"), 1, "TOTAL_VARIANTS", opt)
	if err != nil {
		return product.Product{}, err
	}
	totalInventory, err := parseNumberField(field("TOTAL_INVENTORY"), 0, "TOTAL_INVENTORY", opt)
	if err != nil {
		return product.Product{}, err
	}

	status := field("STATUS")
	if status == "" {
		// The strict path defaults to draft, not active; carried over from
		// the source system as-is.
		status = "draft"
	}

	return product.Product{
		ID:                    field("ID"),
		Title:                 field("TITLE"),
		Handle:                field("HANDLE"),
		Vendor:                field("VENDOR"),
		ProductType:           field("PRODUCT_TYPE"),
		Description:           field("DESCRIPTION"),
		DescriptionHTML:       firstNonEmpty(field("DESCRIPTION_HTML"), field("BODY_HTML")),
		Status:                status,
		Tags:                  jsonStrings(tagsRaw),
		Images:                jsonStrings(imagesRaw),
		FeaturedImage:         field("FEATURED_IMAGE"),
		PriceRange:            product.PriceRange{Min: minPrice, Max: maxPrice},
		TotalVariants:         int(totalVariants),
		TotalInventory:        int(totalInventory),
		IsGiftCard:            parseBoolean(field("IS_GIFT_CARD")),
		HasOutOfStockVariants: parseBoolean(field("HAS_OUT_OF_STOCK_VARIANTS")),
		CreatedAt:             field("CREATED_AT"),
		UpdatedAt:             field("UPDATED_AT"),
		PublishedAt:           field("PUBLISHED_AT"),
		OnlineStoreURL:        field("ONLINE_STORE_URL"),
		AdminGraphqlAPIID:     field("ADMIN_GRAPHQL_API_ID"),
	}, nil
}

// parseJSONField decodes a JSON sub-field. Empty values return nil. A decode
// failure is a hard error only when ValidateDataTypes is set; otherwise the
// field silently decodes to nil.
func parseJSONField(value, fieldName string, opt Options) (any, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		if opt.ValidateDataTypes {
			return nil, errs.Validation(
				"invalid JSON format in field "+fieldName, fieldName, value)
		}
		return nil, nil
	}
	return decoded, nil
}

// parseNumberField coerces a string to float64. Empty input takes the
// fallback; a non-number is a hard error only when ValidateDataTypes is set.
func parseNumberField(value string, fallback float64, fieldName string, opt Options) (float64, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	f, ok := parseFloatLoose(value)
	if !ok {
		if opt.ValidateDataTypes {
			return 0, errs.Validation(
				"invalid number format in field "+fieldName, fieldName, value)
		}
		return fallback, nil
	}
	return f, nil
}

// parseBoolean is the validator's boolean vocabulary: true/1/yes after
// trimming, case-insensitive. Wider than the mapper's "true"-only rule on
// purpose; see internal/product.ParseBool.
func parseBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// jsonBound extracts the min/max bound of a decoded price object as a
// display string, empty when absent. The strict path expects the flat
// {"min": n, "max": n} shape.
func jsonBound(decoded any, key string) string {
	obj, ok := decoded.(map[string]any)
	if !ok {
		return ""
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return trimFloat(t)
	default:
		return fmt.Sprint(t)
	}
}

// jsonStrings flattens a decoded JSON array into strings: string elements
// pass through, objects contribute their "url" property, scalars are
// formatted. Non-arrays yield nothing.
func jsonStrings(decoded any) []string {
	arr, ok := decoded.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, elem := range arr {
		switch t := elem.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case map[string]any:
			if url, ok := t["url"].(string); ok && url != "" {
				out = append(out, url)
			}
		case float64:
			out = append(out, trimFloat(t))
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
