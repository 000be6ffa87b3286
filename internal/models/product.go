package models

// Schema identifies a marketplace spreadsheet layout, either as the detected
// origin of an uploaded file or as the conversion target.
type Schema string

const (
	SchemaEcokart  Schema = "ecokart"
	SchemaEbay     Schema = "ebay"
	SchemaGoogle   Schema = "google"
	SchemaFacebook Schema = "facebook"
)

// ParseSchema validates a user-supplied schema name.
func ParseSchema(s string) (Schema, bool) {
	switch Schema(s) {
	case SchemaEcokart, SchemaEbay, SchemaGoogle, SchemaFacebook:
		return Schema(s), true
	case "":
		return "", false
	}
	return "", false
}

// ListingType is the eBay sale format.
type ListingType string

const (
	ListingFixedPrice ListingType = "FixedPrice"
	ListingAuction    ListingType = "Auction"
)

// InternalProduct is the canonical row representation every conversion pivots
// through. It is built fresh per source row, lives for one request, and is
// never persisted.
//
// Invariants: SKU, Name and a parseable non-negative Price are guaranteed by
// the mappers. Optional string fields are "" when absent, never missing, so
// the generators have no nil branches. ImageURLs ordering is significant:
// index 0 is the primary image for single-link targets.
type InternalProduct struct {
	SKU         string
	Name        string
	Description string
	Price       float64
	SalePrice   *float64
	Quantity    int
	ImageURLs   []string

	UPC   string
	MPN   string
	Brand string

	// Condition carries the source vocabulary (Ecokart condition codes such
	// as NEW_WITH_TAGS, or new/used/refurbished for feed sources). Targets
	// translate it through the taxonomy tables.
	Condition string

	// CategoryLabel is the free-text internal category name. Target category
	// codes are always derived from it through the category tables, never
	// taken from the row.
	CategoryLabel string

	// Feed extension fields (Google/Facebook).
	Color                  string
	Size                   string
	Gender                 string
	AgeGroup               string
	Material               string
	Pattern                string
	ItemGroupID            string
	Availability           string
	AvailabilityDate       string
	ExpirationDate         string
	SalePriceEffectiveDate string

	// eBay extension fields.
	ItemSpecifics map[string]string
	ListingType   ListingType
	Duration      string
	AllowOffers   bool
	VATPercent    *float64
	Weight        float64
}
