package converter

import (
	"strconv"
	"time"

	"converter-service/internal/models"
)

const (
	facebookTitleLimit       = 200
	facebookDescriptionLimit = 9999
)

// facebookHeaders follows the Facebook Marketplace catalog template column
// order.
var facebookHeaders = []string{
	"id",
	"title",
	"description",
	"availability",
	"condition",
	"price",
	"link",
	"image_link",
	"brand",
	"google_product_category",
	"fb_product_category",
	"quantity_to_sell_on_facebook",
	"sale_price",
	"sale_price_effective_date",
	"item_group_id",
	"gender",
	"color",
	"size",
	"age_group",
	"material",
	"pattern",
	"shipping",
	"shipping_weight",
	"gtin",
	"video[0].url",
	"video[0].tag[0]",
	"product_tags[0]",
	"product_tags[1]",
	"style[0]",
}

// GenerateFacebook produces Facebook Marketplace catalog rows. Facebook has
// no refurbished condition, so refurbished collapses to used.
func GenerateFacebook(products []*models.InternalProduct, tr *Translator, opts GeneratorOptions) Table {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		availability := "out of stock"
		if p.Quantity > 0 {
			availability = "in stock"
		}

		condition := NormalizeFeedCondition(p.Condition)
		if condition == "refurbished" {
			condition = "used"
		}

		salePrice := ""
		if p.SalePrice != nil {
			salePrice = formatPrice(*p.SalePrice, opts.Currency)
		}
		saleWindow := p.SalePriceEffectiveDate
		if p.SalePrice != nil && saleWindow == "" {
			saleWindow = opts.Now.Format(time.RFC3339) + "/" + opts.Now.Add(saleWindowLength).Format(time.RFC3339)
		}

		rows = append(rows, []string{
			p.SKU,
			truncate(p.Name, facebookTitleLimit),
			truncate(p.Description, facebookDescriptionLimit),
			availability,
			condition,
			formatPrice(p.Price, opts.Currency),
			opts.StorefrontBaseURL + "/products/" + Slugify(p.Name),
			primaryImage(p),
			p.Brand,
			tr.GoogleCategory(p.CategoryLabel),
			"",
			strconv.Itoa(p.Quantity),
			salePrice,
			saleWindow,
			p.ItemGroupID,
			p.Gender,
			p.Color,
			p.Size,
			p.AgeGroup,
			p.Material,
			p.Pattern,
			"",
			"",
			p.UPC,
			"",
			"",
			"",
			"",
			"",
		})
	}
	return Table{Headers: facebookHeaders, Rows: rows}
}
