package converter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"converter-service/internal/models"
)

const ecokartSheetName = "Products"

// ecokartHeaders is the unified Ecokart catalog import layout. It merges the
// listing fields of the cross-list sheet with the feed extension columns so
// any source schema round-trips through it.
var ecokartHeaders = []string{
	"SKU",
	"Name",
	"Description",
	"Price",
	"CompareAtPrice",
	"CostPrice",
	"Quantity",
	"LowStockThreshold",
	"Brand",
	"Condition",
	"CategoryName",
	"UPC",
	"MPN",
	"Color",
	"Size",
	"Gender",
	"AgeGroup",
	"Material",
	"Pattern",
	"ItemGroupID",
	"ListingType",
	"Duration",
	"AllowOffers",
	"VATPercent",
	"Tags",
	"Image",
	"ImageURLs",
}

// Pricing heuristics applied when listings come back from a marketplace
// without compare-at or cost figures.
const (
	comparePriceFactor       = 1.25
	costPriceFactor          = 0.60
	defaultLowStockThreshold = 10
)

// GenerateEcokart renders products into the Ecokart import workbook. The
// source schema is recorded as an import tag so re-imported listings stay
// traceable.
func GenerateEcokart(products []*models.InternalProduct, source models.Schema) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", ecokartSheetName)

	header := make([]interface{}, len(ecokartHeaders))
	for i, h := range ecokartHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(ecokartSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	tags := ""
	if source != models.SchemaEcokart && source != "" {
		tags = string(source) + ", import"
	}

	for i, p := range products {
		vat := ""
		if p.VATPercent != nil {
			vat = formatDecimal(*p.VATPercent)
		}
		allowOffers := "FALSE"
		if p.AllowOffers {
			allowOffers = "TRUE"
		}

		row := []interface{}{
			p.SKU,
			SanitizeField(p.Name),
			SanitizeField(p.Description),
			p.Price,
			roundPrice(p.Price * comparePriceFactor),
			roundPrice(p.Price * costPriceFactor),
			p.Quantity,
			defaultLowStockThreshold,
			p.Brand,
			p.Condition,
			p.CategoryLabel,
			p.UPC,
			p.MPN,
			p.Color,
			p.Size,
			p.Gender,
			p.AgeGroup,
			p.Material,
			p.Pattern,
			p.ItemGroupID,
			string(p.ListingType),
			strings.TrimPrefix(p.Duration, "Days_"),
			allowOffers,
			vat,
			tags,
			primaryImage(p),
			strings.Join(additionalImages(p), ","),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ecokartSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	// Readability widths for the widest columns.
	f.SetColWidth(ecokartSheetName, "A", "A", 25)
	f.SetColWidth(ecokartSheetName, "B", "C", 50)
	f.SetColWidth(ecokartSheetName, "Z", "AA", 50)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func roundPrice(price float64) float64 {
	return float64(int(price*100+0.5)) / 100
}
