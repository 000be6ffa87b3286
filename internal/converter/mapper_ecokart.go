package converter

import (
	"fmt"
	"strings"

	"converter-service/internal/models"
)

// maxImageColumns bounds the scan over numbered image columns.
const maxImageColumns = 20

// MapEcokart maps a row of the internal catalog format. Image URLs are
// gathered in a documented order: the single "Image" column first, then the
// numbered "Image URL n" columns, then the comma-joined "ImageURLs" column,
// deduplicated by exact string.
func MapEcokart(row Row, _ *Translator) (*models.InternalProduct, *models.RowError) {
	sku := row["sku"]
	name := row["name"]

	if err := requireNonEmpty(row, "SKU", sku); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(row, "Name", name); err != nil {
		return nil, err
	}
	price, perr := parsePrice(row, "Price", row["price"])
	if perr != nil {
		return nil, perr
	}

	description := row["description"]
	if description == "" {
		description = name
	}

	condition := row["condition"]
	if condition == "" {
		condition = defaultCondition
	}

	images := appendUnique(nil, row["image"])
	for i := 1; i <= maxImageColumns; i++ {
		images = appendUnique(images,
			row[fmt.Sprintf("image url %d", i)],
			row[fmt.Sprintf("imageurl%d", i)])
	}
	images = appendUnique(images, splitList(row.Value("imageurls", "image urls"), ",")...)

	listingType := models.ListingFixedPrice
	duration := "GTC"
	if row["listingtype"] == string(models.ListingAuction) {
		listingType = models.ListingAuction
		days := row["duration"]
		if days == "" {
			days = "7"
		}
		duration = "Days_" + days
	}

	specifics := map[string]string{}
	for key, value := range row {
		if aspect, ok := strings.CutPrefix(key, "itemspecific_"); ok && value != "" {
			specifics[titleCaseAspect(aspect)] = value
		}
	}

	return &models.InternalProduct{
		SKU:           sku,
		Name:          name,
		Description:   description,
		Price:         price,
		SalePrice:     clampSalePrice(price, parseOptionalFloat(row.Value("sale price", "saleprice"))),
		Quantity:      parseIntDefault(row["quantity"], 1),
		ImageURLs:     images,
		UPC:           row["upc"],
		MPN:           row["mpn"],
		Brand:         defaultBrand(row["brand"]),
		Condition:     condition,
		CategoryLabel: row.Value("categoryname", "category name"),

		Color:                  row["color"],
		Size:                   row["size"],
		Gender:                 row["gender"],
		AgeGroup:               row.Value("age group", "agegroup"),
		Material:               row["material"],
		Pattern:                row["pattern"],
		ItemGroupID:            row.Value("item group id", "itemgroupid"),
		Availability:           row["availability"],
		AvailabilityDate:       row["availability date"],
		ExpirationDate:         row["expiration date"],
		SalePriceEffectiveDate: row["sale price effective date"],

		ItemSpecifics: specifics,
		ListingType:   listingType,
		Duration:      duration,
		AllowOffers:   strings.EqualFold(row["allowoffers"], "TRUE"),
		VATPercent:    parseOptionalFloat(row["vatpercent"]),
		Weight:        parseFloatDefault(row.Value("weight(kg)", "weight"), 0),
	}, nil
}

func defaultBrand(brand string) string {
	if brand == "" {
		return "Unbranded"
	}
	return brand
}

func parseFloatDefault(raw string, def float64) float64 {
	if f := parseOptionalFloat(raw); f != nil {
		return *f
	}
	return def
}

// titleCaseAspect turns an "itemspecific_" column suffix into an eBay aspect
// name: underscores become spaces and each word is capitalised.
func titleCaseAspect(suffix string) string {
	words := strings.Split(strings.ReplaceAll(suffix, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
