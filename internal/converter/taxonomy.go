package converter

import (
	"strconv"
	"strings"
)

// Curated taxonomy tables. These are maintainers' content, not derivable at
// runtime: extend the maps, not the lookup logic. Category codes should be
// re-checked against the live marketplace taxonomies before a release.

// ecokartToEbayCategory maps internal category labels to eBay UK category IDs.
var ecokartToEbayCategory = map[string]string{
	"Shoes & Footwear":   "15709",
	"Toys & Games":       "220",
	"Fashion & Apparel":  "11450",
	"Men's Clothing":     "1059",
	"Boys Clothes":       "260067",
	"Electronics & Tech": "9355",
	"Home & Living":      "11700",
	"Kids":               "220",
}

// ecokartToGoogleCategory maps internal category labels to Google product
// category IDs. The Facebook catalog format reuses the Google taxonomy.
var ecokartToGoogleCategory = map[string]string{
	"Shoes & Footwear":   "187",
	"Toys & Games":       "334",
	"Fashion & Apparel":  "1604",
	"Men's Clothing":     "212",
	"Boys Clothes":       "5424",
	"Electronics & Tech": "505369",
	"Home & Living":      "449",
	"Kids":               "334",
}

// Reverse tables for imports from a marketplace. Kept explicit rather than
// inverted at init because several labels share a marketplace code ("Toys &
// Games" and "Kids" both feed 334) and the canonical label must be stable.
var ebayCategoryToEcokart = map[string]string{
	"15709":  "Shoes & Footwear",
	"220":    "Toys & Games",
	"11450":  "Fashion & Apparel",
	"1059":   "Men's Clothing",
	"260067": "Boys Clothes",
	"9355":   "Electronics & Tech",
	"11700":  "Home & Living",
}

var googleCategoryToEcokart = map[string]string{
	"187":    "Shoes & Footwear",
	"334":    "Toys & Games",
	"1604":   "Fashion & Apparel",
	"212":    "Men's Clothing",
	"5424":   "Boys Clothes",
	"505369": "Electronics & Tech",
	"449":    "Home & Living",
}

// ecokartToEbayCondition maps Ecokart condition codes to eBay condition IDs.
var ecokartToEbayCondition = map[string]int{
	"NEW_WITH_TAGS":            1000,
	"NEW_WITHOUT_TAGS":         1500,
	"VERY_GOOD_USED_CONDITION": 2500,
	"GOOD":                     3000,
	"SATISFACTORY":             4000,
}

// feedConditionToEbay covers files that use the feed vocabulary instead of
// Ecokart condition codes.
var feedConditionToEbay = map[string]int{
	"new":         1000,
	"refurbished": 2500,
	"used":        3000,
}

const (
	// defaultEbayConditionID is used when a condition has no mapping ("Used").
	defaultEbayConditionID = 3000

	// fallbackCategoryLabel is resolved for target category codes absent
	// from the reverse tables. Unmapped categories are never an error.
	fallbackCategoryLabel = "Everything Else"

	defaultCondition = "GOOD"
)

// Translator resolves category and condition codes for one conversion batch.
// Lookups are memoized per batch only; the caches die with the request so the
// tables cannot grow across requests.
type Translator struct {
	ebayCategories   map[string]string
	googleCategories map[string]string
}

// NewTranslator returns a request-scoped translator.
func NewTranslator() *Translator {
	return &Translator{
		ebayCategories:   make(map[string]string),
		googleCategories: make(map[string]string),
	}
}

// EbayCategory resolves an internal category label to an eBay category ID,
// or "" when unmapped.
func (t *Translator) EbayCategory(label string) string {
	label = strings.TrimSpace(label)
	if code, ok := t.ebayCategories[label]; ok {
		return code
	}
	code := ecokartToEbayCategory[label]
	t.ebayCategories[label] = code
	return code
}

// GoogleCategory resolves an internal category label to a Google product
// category ID, or "" when unmapped. Also used for Facebook output.
func (t *Translator) GoogleCategory(label string) string {
	label = strings.TrimSpace(label)
	if code, ok := t.googleCategories[label]; ok {
		return code
	}
	code := ecokartToGoogleCategory[label]
	t.googleCategories[label] = code
	return code
}

// CategoryFromEbay reverse-maps an eBay category ID to an internal label,
// falling back to the configured default label.
func (t *Translator) CategoryFromEbay(id string) string {
	if label, ok := ebayCategoryToEcokart[strings.TrimSpace(id)]; ok {
		return label
	}
	return fallbackCategoryLabel
}

// CategoryFromGoogle reverse-maps a Google product category ID to an
// internal label, falling back to the configured default label.
func (t *Translator) CategoryFromGoogle(id string) string {
	if label, ok := googleCategoryToEcokart[strings.TrimSpace(id)]; ok {
		return label
	}
	return fallbackCategoryLabel
}

// EbayConditionID resolves a condition in either vocabulary to an eBay
// condition ID, defaulting to Used.
func (t *Translator) EbayConditionID(condition string) int {
	if id, ok := ecokartToEbayCondition[strings.ToUpper(strings.TrimSpace(condition))]; ok {
		return id
	}
	if id, ok := feedConditionToEbay[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return id
	}
	return defaultEbayConditionID
}

// ConditionFromEbayID reverse-maps an eBay condition ID to the Ecokart
// condition code, defaulting to GOOD.
func (t *Translator) ConditionFromEbayID(id int) string {
	for code, condID := range ecokartToEbayCondition {
		if condID == id {
			return code
		}
	}
	return defaultCondition
}

// parseEbayConditionID parses a raw condition cell as a numeric ID.
func parseEbayConditionID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	return id, err == nil
}

// NormalizeFeedCondition collapses any condition vocabulary to the feed enum
// new/used/refurbished, defaulting to new.
func NormalizeFeedCondition(condition string) string {
	switch c := strings.ToLower(strings.TrimSpace(condition)); c {
	case "new", "used", "refurbished":
		return c
	case "new_with_tags", "new_without_tags":
		return "new"
	case "very_good_used_condition", "good", "satisfactory":
		return "used"
	}
	return "new"
}
