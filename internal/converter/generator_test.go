package converter

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"converter-service/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testOptions() GeneratorOptions {
	return GeneratorOptions{
		Currency:          "GBP",
		StorefrontBaseURL: "https://ecokartuk.com",
		Ebay: EbayDefaults{
			Location:        "Chhindwara",
			DispatchTime:    "3",
			ShippingService: "UK_RoyalMail48",
			ShippingCost:    "3.99",
			PaymentProfile:  "ManagedPayments",
			ReturnProfile:   "30DayReturns",
			ShippingProfile: "DefaultShipping",
		},
		Now: testNow,
	}
}

func sampleProduct() *models.InternalProduct {
	sale := 19.99
	return &models.InternalProduct{
		SKU:           "WID-1",
		Name:          "Blue Widget",
		Description:   "A very blue widget",
		Price:         24.99,
		SalePrice:     &sale,
		Quantity:      5,
		ImageURLs:     []string{"a.jpg", "b.jpg"},
		UPC:           "5012345678900",
		Brand:         "Acme",
		Condition:     "NEW_WITH_TAGS",
		CategoryLabel: "Men's Clothing",
		ListingType:   models.ListingFixedPrice,
		Duration:      "GTC",
	}
}

func cellByHeader(t *testing.T, table Table, row int, header string) string {
	t.Helper()
	for i, h := range table.Headers {
		if h == header {
			require.Less(t, row, len(table.Rows))
			return table.Rows[row][i]
		}
	}
	t.Fatalf("header %q not found", header)
	return ""
}

func TestGenerateEbay(t *testing.T) {
	p := sampleProduct()
	table := GenerateEbay([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], len(ebayHeaders))

	assert.Equal(t, "Add", cellByHeader(t, table, 0, EbayActionHeader))
	assert.Equal(t, "1059", cellByHeader(t, table, 0, "*Category"))
	assert.Equal(t, "Blue Widget", cellByHeader(t, table, 0, "*Title"))
	assert.Equal(t, "WID-1", cellByHeader(t, table, 0, "Custom label (SKU)"))
	assert.Equal(t, "24.99", cellByHeader(t, table, 0, "*StartPrice"))
	assert.Equal(t, "", cellByHeader(t, table, 0, "Buy It Now Price"))
	assert.Equal(t, "a.jpg|b.jpg", cellByHeader(t, table, 0, "PicURL"))
	assert.Equal(t, "1000", cellByHeader(t, table, 0, "*ConditionID"))
	assert.Equal(t, "FixedPrice", cellByHeader(t, table, 0, "*Format"))
	assert.Equal(t, "GTC", cellByHeader(t, table, 0, "*Duration"))
	assert.Equal(t, "Chhindwara", cellByHeader(t, table, 0, "*Location"))
	assert.Equal(t, "UK_RoyalMail48", cellByHeader(t, table, 0, "ShippingService-1:Option"))
	assert.Equal(t, "0", cellByHeader(t, table, 0, "BestOfferEnabled"))
	assert.Equal(t, "Acme", cellByHeader(t, table, 0, "C:Brand"))
}

func TestGenerateEbayAuctionAndTruncation(t *testing.T) {
	p := sampleProduct()
	p.Name = strings.Repeat("x", 95)
	p.ListingType = models.ListingAuction
	p.Duration = "Days_7"
	p.Price = 10
	p.AllowOffers = true

	table := GenerateEbay([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	assert.Len(t, cellByHeader(t, table, 0, "*Title"), 80)
	assert.Equal(t, "14.00", cellByHeader(t, table, 0, "Buy It Now Price"))
	assert.Equal(t, "Auction", cellByHeader(t, table, 0, "*Format"))
	assert.Equal(t, "Days_7", cellByHeader(t, table, 0, "*Duration"))
	assert.Equal(t, "1", cellByHeader(t, table, 0, "BestOfferEnabled"))
}

func TestGenerateGoogle(t *testing.T) {
	p := sampleProduct()
	table := GenerateGoogle([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], len(googleHeaders))

	assert.Equal(t, "WID-1", cellByHeader(t, table, 0, "id"))
	assert.Equal(t, "in_stock", cellByHeader(t, table, 0, "availability"))
	assert.Equal(t, "24.99 GBP", cellByHeader(t, table, 0, "price"))
	assert.Equal(t, "19.99 GBP", cellByHeader(t, table, 0, "sale price"))
	assert.Equal(t, "https://ecokartuk.com/products/blue-widget", cellByHeader(t, table, 0, "link"))
	assert.Equal(t, "a.jpg", cellByHeader(t, table, 0, "image link"))
	assert.Equal(t, "b.jpg", cellByHeader(t, table, 0, "additional image link"))
	assert.Equal(t, "yes", cellByHeader(t, table, 0, "identifier exists"))
	assert.Equal(t, "new", cellByHeader(t, table, 0, "condition"))
	assert.Equal(t, "212", cellByHeader(t, table, 0, "google_product_category"))
	assert.Equal(t, "5", cellByHeader(t, table, 0, "sell on google quantity"))
}

func TestGenerateGoogleDates(t *testing.T) {
	p := sampleProduct()
	table := GenerateGoogle([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	expectedExpiration := testNow.Add(30 * 24 * time.Hour).Format(time.RFC3339)
	assert.Equal(t, expectedExpiration, cellByHeader(t, table, 0, "expiration date"))

	expectedWindow := testNow.Format(time.RFC3339) + "/" + testNow.Add(14*24*time.Hour).Format(time.RFC3339)
	assert.Equal(t, expectedWindow, cellByHeader(t, table, 0, "sale price effective date"))
}

func TestGenerateGoogleAvailability(t *testing.T) {
	p := sampleProduct()
	p.SalePrice = nil
	p.UPC = ""

	p.Quantity = 0
	table := GenerateGoogle([]*models.InternalProduct{p}, NewTranslator(), testOptions())
	assert.Equal(t, "out_of_stock", cellByHeader(t, table, 0, "availability"))
	assert.Equal(t, "no", cellByHeader(t, table, 0, "identifier exists"))
	assert.Equal(t, "", cellByHeader(t, table, 0, "sale price"))
	assert.Equal(t, "", cellByHeader(t, table, 0, "sale price effective date"))

	p.Availability = "preorder"
	table = GenerateGoogle([]*models.InternalProduct{p}, NewTranslator(), testOptions())
	assert.Equal(t, "preorder", cellByHeader(t, table, 0, "availability"))
}

func TestGenerateFacebook(t *testing.T) {
	p := sampleProduct()
	p.Condition = "refurbished"

	table := GenerateFacebook([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], len(facebookHeaders))

	assert.Equal(t, "in stock", cellByHeader(t, table, 0, "availability"))
	assert.Equal(t, "used", cellByHeader(t, table, 0, "condition"))
	assert.Equal(t, "24.99 GBP", cellByHeader(t, table, 0, "price"))
	assert.Equal(t, "212", cellByHeader(t, table, 0, "google_product_category"))
	assert.Equal(t, "5", cellByHeader(t, table, 0, "quantity_to_sell_on_facebook"))
	assert.Equal(t, "https://ecokartuk.com/products/blue-widget", cellByHeader(t, table, 0, "link"))
}

func TestGenerateEcokart(t *testing.T) {
	p := sampleProduct()
	p.Duration = "Days_7"

	data, err := GenerateEcokart([]*models.InternalProduct{p}, models.SchemaEbay)
	require.NoError(t, err)

	f, err := excelize.OpenReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ecokartHeaders, rows[0])

	get := func(header string) string {
		for i, h := range rows[0] {
			if h == header {
				if i < len(rows[1]) {
					return rows[1][i]
				}
				return ""
			}
		}
		t.Fatalf("header %q not found", header)
		return ""
	}

	assert.Equal(t, "WID-1", get("SKU"))
	assert.Equal(t, "Blue Widget", get("Name"))
	assert.Equal(t, "24.99", get("Price"))
	assert.Equal(t, "31.24", get("CompareAtPrice"))
	assert.Equal(t, "14.99", get("CostPrice"))
	assert.Equal(t, "5", get("Quantity"))
	assert.Equal(t, "10", get("LowStockThreshold"))
	assert.Equal(t, "NEW_WITH_TAGS", get("Condition"))
	assert.Equal(t, "Men's Clothing", get("CategoryName"))
	assert.Equal(t, "7", get("Duration"))
	assert.Equal(t, "ebay, import", get("Tags"))
	assert.Equal(t, "a.jpg", get("Image"))
	assert.Equal(t, "b.jpg", get("ImageURLs"))
}

func TestGenerateEcokartNoImportTag(t *testing.T) {
	data, err := GenerateEcokart([]*models.InternalProduct{sampleProduct()}, models.SchemaEcokart)
	require.NoError(t, err)

	f, err := excelize.OpenReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for i, h := range rows[0] {
		if h == "Tags" {
			tag := ""
			if i < len(rows[1]) {
				tag = rows[1][i]
			}
			assert.Equal(t, "", tag)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcdefg", 5))

	// The budget counts characters, not bytes: a 50-rune accented title fits
	// an 80-rune limit untouched, and a cut never yields invalid UTF-8.
	accented := strings.Repeat("é", 50)
	assert.Equal(t, accented, truncate(accented, 80))

	long := strings.Repeat("é", 90)
	cut := truncate(long, 80)
	assert.Equal(t, 80, utf8.RuneCountInString(cut))
	assert.True(t, utf8.ValidString(cut))
}

func TestGenerateEbayTitleBudgetIsRunes(t *testing.T) {
	p := sampleProduct()
	p.Name = strings.Repeat("é", 90)

	table := GenerateEbay([]*models.InternalProduct{p}, NewTranslator(), testOptions())

	title := cellByHeader(t, table, 0, "*Title")
	assert.Equal(t, 80, utf8.RuneCountInString(title))
	assert.True(t, utf8.ValidString(title))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "24.99 GBP", formatPrice(24.99, "GBP"))
	assert.Equal(t, "5.00 USD", formatPrice(5, "USD"))
}
