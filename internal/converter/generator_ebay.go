package converter

import (
	"fmt"
	"strconv"
	"strings"

	"converter-service/internal/models"
)

// EbayActionHeader is the literal marker column the File Exchange bulk
// upload tool requires as the first header cell.
const EbayActionHeader = "Action(SiteID=UK|Country=GB|Currency=GBP|Version=1191)"

// ebayTitleLimit is eBay's listing title character budget.
const ebayTitleLimit = 80

// ebayHeaders is the fixed column contract of the generated sheet. The
// order must match the header line of the eBay listing template, so item
// specifics are limited to the fixed C:Brand column rather than dynamic
// per-file aspect columns.
var ebayHeaders = []string{
	EbayActionHeader,
	"*Category",
	"*Title",
	"Subtitle",
	"Relationship",
	"RelationshipDetails",
	"Custom label (SKU)",
	"*StartPrice",
	"Buy It Now Price",
	"*Quantity",
	"PicURL",
	"*ConditionID",
	"Description",
	"*Format",
	"*Duration",
	"*Location",
	"ShippingService-1:Option",
	"ShippingService-1:Cost",
	"DispatchTimeMax",
	"PaymentProfileName",
	"ReturnProfileName",
	"ShippingProfileName",
	"BestOfferEnabled",
	"VATPercent",
	"C:Brand",
}

// GenerateEbay produces File Exchange "Add" rows for the given products.
// Inputs are already validated; this stage never fails a row.
func GenerateEbay(products []*models.InternalProduct, tr *Translator, opts GeneratorOptions) Table {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		buyItNow := ""
		if p.ListingType == models.ListingAuction {
			buyItNow = fmt.Sprintf("%.2f", p.Price*1.4)
		}
		vat := ""
		if p.VATPercent != nil {
			vat = formatDecimal(*p.VATPercent)
		}
		offers := "0"
		if p.AllowOffers {
			offers = "1"
		}

		rows = append(rows, []string{
			"Add",
			tr.EbayCategory(p.CategoryLabel),
			truncate(p.Name, ebayTitleLimit),
			"",
			"",
			"",
			p.SKU,
			formatDecimal(p.Price),
			buyItNow,
			strconv.Itoa(p.Quantity),
			strings.Join(p.ImageURLs, "|"),
			strconv.Itoa(tr.EbayConditionID(p.Condition)),
			p.Description,
			string(p.ListingType),
			p.Duration,
			opts.Ebay.Location,
			opts.Ebay.ShippingService,
			opts.Ebay.ShippingCost,
			opts.Ebay.DispatchTime,
			opts.Ebay.PaymentProfile,
			opts.Ebay.ReturnProfile,
			opts.Ebay.ShippingProfile,
			offers,
			vat,
			p.Brand,
		})
	}
	return Table{Headers: ebayHeaders, Rows: rows}
}
