package converter

import (
	"strings"

	"converter-service/internal/models"
)

// MapEbay maps a row of an eBay File Exchange upload sheet or a Seller Hub
// export. The two layouts name their columns differently ("*Title" vs
// "Title", "*StartPrice" vs "Start price"), so each field falls back through
// the known variants; a missing SKU additionally falls back to the listing's
// item number.
func MapEbay(row Row, tr *Translator) (*models.InternalProduct, *models.RowError) {
	sku := row.Value("custom label (sku)", "item number")
	name := row.Value("*title", "title")

	if sku == "" {
		return nil, rowError(row, "Custom label (SKU)", `Both "Custom label (SKU)" and "Item number" are missing.`)
	}
	if err := requireNonEmpty(row, "Title", name); err != nil {
		return nil, err
	}
	price, perr := parsePrice(row, "StartPrice", row.Value("*startprice", "start price"))
	if perr != nil {
		return nil, perr
	}

	description := row["description"]
	if description == "" {
		description = name
	}

	condition := defaultCondition
	if id, ok := parseEbayConditionID(row["*conditionid"]); ok {
		condition = tr.ConditionFromEbayID(id)
	} else if raw := row["condition"]; raw != "" {
		condition = strings.ToUpper(raw)
	}

	categoryLabel := tr.CategoryFromEbay(row["*category"])
	if row["*category"] == "" {
		categoryLabel = row.Value("ebay category 1 name", "category name")
		if categoryLabel == "" {
			categoryLabel = fallbackCategoryLabel
		}
	}

	images := splitList(row.Value("picurl", "item photo url"), "|")

	specifics := map[string]string{}
	for key, value := range row {
		if aspect, ok := strings.CutPrefix(key, "c:"); ok && value != "" {
			specifics[titleCaseAspect(aspect)] = value
		}
	}

	duration := row["*duration"]
	if duration == "" {
		duration = "GTC"
	}
	listingType := models.ListingFixedPrice
	if row["*format"] == string(models.ListingAuction) {
		listingType = models.ListingAuction
	}

	return &models.InternalProduct{
		SKU:           sku,
		Name:          name,
		Description:   description,
		Price:         price,
		Quantity:      parseIntDefault(row.Value("*quantity", "available quantity"), 1),
		ImageURLs:     images,
		UPC:           row.Value("p:upc", "upc"),
		Brand:         defaultBrand(row.Value("c:brand", "brand")),
		Condition:     condition,
		CategoryLabel: categoryLabel,
		ItemSpecifics: specifics,
		ListingType:   listingType,
		Duration:      duration,
		AllowOffers:   row["bestofferenabled"] == "1",
		VATPercent:    parseOptionalFloat(row["vatpercent"]),
	}, nil
}
