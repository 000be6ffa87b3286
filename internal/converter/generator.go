package converter

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// Table is an ordered tabular output: field order matters because composed
// targets append rows beneath a fixed template header.
type Table struct {
	Headers []string
	Rows    [][]string
}

// EbayDefaults are the listing defaults stamped onto every generated eBay
// row. Values come from configuration, not from the source file.
type EbayDefaults struct {
	Location        string
	DispatchTime    string
	ShippingService string
	ShippingCost    string
	PaymentProfile  string
	ReturnProfile   string
	ShippingProfile string
}

// GeneratorOptions carries the per-deployment knobs the generators need.
// Now is injected so date-derived feed fields are reproducible in tests.
type GeneratorOptions struct {
	Currency          string
	StorefrontBaseURL string
	Ebay              EbayDefaults
	Now               time.Time
}

// truncate limits a string to the target schema's character budget. The
// budget counts runes, not bytes, so multi-byte titles keep their full
// allowance and the cut never splits a UTF-8 sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func formatPrice(price float64, currency string) string {
	return strconv.FormatFloat(price, 'f', 2, 64) + " " + currency
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
