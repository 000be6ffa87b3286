package converter

import (
	"strconv"
	"strings"
	"time"

	"converter-service/internal/models"
)

const (
	googleTitleLimit       = 150
	googleDescriptionLimit = 5000

	// Defaults for date-derived fields when the source row supplies none.
	googleExpirationOffset = 30 * 24 * time.Hour
	saleWindowLength       = 14 * 24 * time.Hour
)

// googleHeaders follows the column order of the Google Merchant feed
// template exactly; the feed is appended beneath the template header without
// its own header row, so order is load-bearing.
var googleHeaders = []string{
	"id",
	"title",
	"description",
	"availability",
	"availability date",
	"expiration date",
	"link",
	"image link",
	"price",
	"sale price",
	"sale price effective date",
	"identifier exists",
	"gtin",
	"mpn",
	"brand",
	"product highlight",
	"product detail",
	"additional image link",
	"condition",
	"adult",
	"color",
	"size",
	"gender",
	"material",
	"pattern",
	"age group",
	"multipack",
	"is bundle",
	"unit pricing measure",
	"unit pricing base measure",
	"energy efficiency class",
	"min energy efficiency class",
	"max energy efficiency class",
	"item group id",
	"sell on google quantity",
	"google_product_category",
}

// GenerateGoogle produces Google Merchant feed rows.
func GenerateGoogle(products []*models.InternalProduct, tr *Translator, opts GeneratorOptions) Table {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		availability := "out_of_stock"
		switch status := strings.ToLower(p.Availability); {
		case status == "preorder" || status == "backorder":
			availability = status
		case p.Quantity > 0:
			availability = "in_stock"
		}

		expiration := p.ExpirationDate
		if expiration == "" {
			expiration = opts.Now.Add(googleExpirationOffset).Format(time.RFC3339)
		}

		salePrice := ""
		if p.SalePrice != nil {
			salePrice = formatPrice(*p.SalePrice, opts.Currency)
		}
		saleWindow := p.SalePriceEffectiveDate
		if p.SalePrice != nil && saleWindow == "" {
			saleWindow = opts.Now.Format(time.RFC3339) + "/" + opts.Now.Add(saleWindowLength).Format(time.RFC3339)
		}

		identifierExists := "no"
		if p.UPC != "" || p.MPN != "" {
			identifierExists = "yes"
		}

		rows = append(rows, []string{
			p.SKU,
			truncate(p.Name, googleTitleLimit),
			truncate(p.Description, googleDescriptionLimit),
			availability,
			p.AvailabilityDate,
			expiration,
			opts.StorefrontBaseURL + "/products/" + Slugify(p.Name),
			primaryImage(p),
			formatPrice(p.Price, opts.Currency),
			salePrice,
			saleWindow,
			identifierExists,
			p.UPC,
			p.MPN,
			p.Brand,
			"",
			"",
			strings.Join(additionalImages(p), ","),
			NormalizeFeedCondition(p.Condition),
			"no",
			p.Color,
			p.Size,
			p.Gender,
			p.Material,
			p.Pattern,
			p.AgeGroup,
			"",
			"",
			"",
			"",
			"",
			"",
			"",
			p.ItemGroupID,
			strconv.Itoa(p.Quantity),
			tr.GoogleCategory(p.CategoryLabel),
		})
	}
	return Table{Headers: googleHeaders, Rows: rows}
}

func primaryImage(p *models.InternalProduct) string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

func additionalImages(p *models.InternalProduct) []string {
	if len(p.ImageURLs) < 2 {
		return nil
	}
	return p.ImageURLs[1:]
}
