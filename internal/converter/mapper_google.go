package converter

import (
	"strings"

	"converter-service/internal/models"
)

// MapGoogle maps a row of a Google Merchant feed back into the canonical
// product. Prices arrive with a currency suffix ("12.34 GBP") which is
// stripped before the strict decimal parse.
func MapGoogle(row Row, tr *Translator) (*models.InternalProduct, *models.RowError) {
	sku := row["id"]
	name := row["title"]

	if err := requireNonEmpty(row, "id", sku); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(row, "title", name); err != nil {
		return nil, err
	}
	price, perr := parsePrice(row, "price", stripCurrency(row["price"]))
	if perr != nil {
		return nil, perr
	}

	description := row["description"]
	if description == "" {
		description = name
	}

	availability := row["availability"]
	quantity := 0
	if availability == "in_stock" || availability == "in stock" {
		quantity = 1
	}

	images := appendUnique(nil, row["image link"])
	images = appendUnique(images, splitList(row["additional image link"], ",")...)

	return &models.InternalProduct{
		SKU:           sku,
		Name:          name,
		Description:   description,
		Price:         price,
		SalePrice:     clampSalePrice(price, parseOptionalFloat(stripCurrency(row["sale price"]))),
		Quantity:      quantity,
		ImageURLs:     images,
		UPC:           row["gtin"],
		MPN:           row["mpn"],
		Brand:         defaultBrand(row["brand"]),
		Condition:     NormalizeFeedCondition(row["condition"]),
		CategoryLabel: tr.CategoryFromGoogle(row["google_product_category"]),

		Color:                  row["color"],
		Size:                   row["size"],
		Gender:                 row["gender"],
		AgeGroup:               row["age group"],
		Material:               row["material"],
		Pattern:                row["pattern"],
		ItemGroupID:            row["item group id"],
		Availability:           availability,
		AvailabilityDate:       row["availability date"],
		ExpirationDate:         row["expiration date"],
		SalePriceEffectiveDate: row["sale price effective date"],
	}, nil
}

// stripCurrency drops a trailing ISO currency code from a feed price cell.
func stripCurrency(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
