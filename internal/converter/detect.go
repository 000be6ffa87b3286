package converter

import (
	"strings"

	"converter-service/internal/models"
)

// ebayActionMarker prefixes the reserved action column every eBay File
// Exchange sheet carries, e.g. "Action(SiteID=UK|Country=GB|...)".
const ebayActionMarker = "action(siteid"

// DetectSchema classifies the origin schema of a parsed file from the header
// keys of its first record. Marker columns win over the explicit override;
// without either the file is treated as Ecokart. Detection never fails, it
// only selects which mapper and required-header set apply.
func DetectSchema(first Row, override models.Schema) models.Schema {
	hasEbayMarker := false
	for key := range first {
		if key == rowNumberKey {
			continue
		}
		if strings.HasPrefix(key, ebayActionMarker) || strings.HasPrefix(key, "*") {
			hasEbayMarker = true
			break
		}
	}
	switch {
	case hasEbayMarker:
		return models.SchemaEbay
	case hasKey(first, "fb_product_category") || hasKey(first, "quantity_to_sell_on_facebook"):
		return models.SchemaFacebook
	case hasKey(first, "google_product_category") && hasKey(first, "identifier exists"):
		return models.SchemaGoogle
	case override != "":
		return override
	}
	return models.SchemaEcokart
}

func hasKey(row Row, key string) bool {
	_, ok := row[key]
	return ok
}

// requiredHeaderGroups lists, per schema, the header alternatives the mapper
// needs. Each group is satisfied by any one of its members; the first member
// is the canonical name reported when the whole group is missing.
func requiredHeaderGroups(schema models.Schema) [][]string {
	switch schema {
	case models.SchemaEbay:
		return [][]string{
			{"custom label (sku)", "item number"},
			{"*title", "title"},
			{"*startprice", "start price"},
		}
	case models.SchemaGoogle, models.SchemaFacebook:
		return [][]string{
			{"id"},
			{"title"},
			{"price"},
		}
	default:
		return [][]string{
			{"sku"},
			{"name"},
			{"price"},
		}
	}
}

// MissingHeaders checks the selected schema's required-header set against
// the first record and returns the exact list of absent headers.
func MissingHeaders(first Row, schema models.Schema) []string {
	var missing []string
	for _, group := range requiredHeaderGroups(schema) {
		found := false
		for _, name := range group {
			if hasKey(first, name) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, group[0])
		}
	}
	return missing
}
