package converter

import (
	"converter-service/internal/models"
)

// MapFacebook maps a row of a Facebook Marketplace catalog file. The layout
// mirrors the Google feed with underscored column names and an explicit
// quantity column.
func MapFacebook(row Row, tr *Translator) (*models.InternalProduct, *models.RowError) {
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

	quantity := parseIntDefault(row["quantity_to_sell_on_facebook"], 0)
	availability := row["availability"]
	if quantity == 0 && (availability == "in stock" || availability == "in_stock") {
		quantity = 1
	}

	images := appendUnique(nil, row["image_link"])
	images = appendUnique(images, splitList(row["additional_image_link"], ",")...)

	return &models.InternalProduct{
		SKU:           sku,
		Name:          name,
		Description:   description,
		Price:         price,
		SalePrice:     clampSalePrice(price, parseOptionalFloat(stripCurrency(row["sale_price"]))),
		Quantity:      quantity,
		ImageURLs:     images,
		UPC:           row["gtin"],
		Brand:         defaultBrand(row["brand"]),
		Condition:     NormalizeFeedCondition(row["condition"]),
		CategoryLabel: tr.CategoryFromGoogle(row["google_product_category"]),

		Color:                  row["color"],
		Size:                   row["size"],
		Gender:                 row["gender"],
		AgeGroup:               row["age_group"],
		Material:               row["material"],
		Pattern:                row["pattern"],
		ItemGroupID:            row["item_group_id"],
		Availability:           availability,
		SalePriceEffectiveDate: row["sale_price_effective_date"],
	}, nil
}
