package models

// JSON is a generic JSON object used for error details.
type JSON map[string]interface{}

// RowError represents a validation error for a specific spreadsheet row.
// Row is the 1-based physical row number including the header row, so the
// first data row reports as row 2.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the error body of the standard error envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details *JSON  `json:"details,omitempty"`
}

// ErrorResponse is the standard error envelope. Errors carries the per-row
// validation list when a conversion is rejected as a whole.
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Error     Error      `json:"error"`
	Errors    []RowError `json:"errors,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// SuccessResponse is the standard success envelope for JSON endpoints.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}

// Error codes returned by the conversion endpoint.
const (
	CodeFileRequired     = "FILE_REQUIRED"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeInvalidTarget    = "INVALID_TARGET"
	CodeParseError       = "PARSE_ERROR"
	CodeEmptyFile        = "EMPTY_FILE"
	CodeMissingHeaders   = "MISSING_HEADERS"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	CodeConversionFailed = "CONVERSION_FAILED"
)

// TemplateColumn defines a column in the source template download.
type TemplateColumn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"` // string, number, boolean
	Example     string `json:"example"`
}

// SourceTemplate defines the structure of the Ecokart source template.
type SourceTemplate struct {
	Entity  string           `json:"entity"`
	Version string           `json:"version"`
	Columns []TemplateColumn `json:"columns"`
}

// EcokartColumns returns the column definitions for the Ecokart source
// spreadsheet accepted by the converter.
func EcokartColumns() []TemplateColumn {
	return []TemplateColumn{
		{Name: "SKU", Description: "Unique product SKU", Required: true, Type: "string", Example: "TSH-BLU-001"},
		{Name: "Name", Description: "Product name, becomes the listing title", Required: true, Type: "string", Example: "Blue Cotton T-Shirt"},
		{Name: "Price", Description: "Product price", Required: true, Type: "number", Example: "29.99"},
		{Name: "Sale Price", Description: "Discounted price, must be below Price", Required: false, Type: "number", Example: "24.99"},
		{Name: "Description", Description: "Product description, defaults to Name", Required: false, Type: "string", Example: ""},
		{Name: "Quantity", Description: "Stock quantity", Required: false, Type: "number", Example: "5"},
		{Name: "Category Name", Description: "Internal category label used for marketplace category mapping", Required: false, Type: "string", Example: "Men's Clothing"},
		{Name: "Brand", Description: "Brand name, defaults to Unbranded", Required: false, Type: "string", Example: "EcoKart"},
		{Name: "Condition", Description: "NEW_WITH_TAGS, NEW_WITHOUT_TAGS, VERY_GOOD_USED_CONDITION, GOOD, SATISFACTORY or new/used/refurbished", Required: false, Type: "string", Example: "GOOD"},
		{Name: "UPC", Description: "Universal product code", Required: false, Type: "string", Example: ""},
		{Name: "MPN", Description: "Manufacturer part number", Required: false, Type: "string", Example: ""},
		{Name: "Image", Description: "Primary image URL", Required: false, Type: "string", Example: "https://cdn.example.com/a.jpg"},
		{Name: "Image URL 1", Description: "Additional image URL (Image URL 2, 3, ... also accepted)", Required: false, Type: "string", Example: ""},
		{Name: "ImageURLs", Description: "Comma-joined additional image URLs", Required: false, Type: "string", Example: ""},
		{Name: "Color", Description: "Colour variant", Required: false, Type: "string", Example: ""},
		{Name: "Size", Description: "Size variant", Required: false, Type: "string", Example: ""},
		{Name: "Gender", Description: "male, female or unisex", Required: false, Type: "string", Example: ""},
		{Name: "Age Group", Description: "newborn, infant, toddler, kids or adult", Required: false, Type: "string", Example: ""},
		{Name: "Material", Description: "Primary material", Required: false, Type: "string", Example: ""},
		{Name: "Pattern", Description: "Pattern or print", Required: false, Type: "string", Example: ""},
		{Name: "Item Group ID", Description: "Groups variants of one product", Required: false, Type: "string", Example: ""},
		{Name: "Availability", Description: "preorder or backorder override, otherwise derived from Quantity", Required: false, Type: "string", Example: ""},
		{Name: "ListingType", Description: "FixedPrice or Auction (eBay target)", Required: false, Type: "string", Example: "FixedPrice"},
		{Name: "Duration", Description: "Auction duration in days (eBay target)", Required: false, Type: "number", Example: "7"},
		{Name: "AllowOffers", Description: "TRUE to enable best offers (eBay target)", Required: false, Type: "boolean", Example: "FALSE"},
		{Name: "VATPercent", Description: "VAT rate (eBay target)", Required: false, Type: "number", Example: ""},
		{Name: "Weight(kg)", Description: "Product weight in kilograms", Required: false, Type: "number", Example: ""},
	}
}

// EcokartTemplate returns the template definition for the Ecokart source format.
func EcokartTemplate() SourceTemplate {
	return SourceTemplate{
		Entity:  "products",
		Version: "1.0",
		Columns: EcokartColumns(),
	}
}
