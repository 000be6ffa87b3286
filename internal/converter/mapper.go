package converter

import (
	"fmt"
	"strconv"
	"strings"

	"converter-service/internal/models"
)

// MapperFunc maps one raw record into the canonical product, or reports the
// first failing field of that row. Required-field checks run in a fixed
// order (sku, name, price, then schema extras) and stop at the first
// failure, so each row contributes at most one error.
type MapperFunc func(row Row, tr *Translator) (*models.InternalProduct, *models.RowError)

// MapperFor selects the mapper for a detected source schema.
func MapperFor(schema models.Schema) MapperFunc {
	switch schema {
	case models.SchemaEbay:
		return MapEbay
	case models.SchemaGoogle:
		return MapGoogle
	case models.SchemaFacebook:
		return MapFacebook
	default:
		return MapEcokart
	}
}

func rowError(row Row, field, message string) *models.RowError {
	return &models.RowError{Row: row.Num(), Field: field, Message: message}
}

func requireNonEmpty(row Row, field, value string) *models.RowError {
	if value == "" {
		return rowError(row, field, fmt.Sprintf("%q cannot be empty.", field))
	}
	return nil
}

// parsePrice applies the strict decimal parse. A non-numeric price is always
// an error, never coerced to zero.
func parsePrice(row Row, field, raw string) (float64, *models.RowError) {
	if raw == "" {
		return 0, rowError(row, field, fmt.Sprintf("%q cannot be empty.", field))
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, rowError(row, field, fmt.Sprintf("%q must be a valid number.", field))
	}
	if price < 0 {
		return 0, rowError(row, field, fmt.Sprintf("%q cannot be negative.", field))
	}
	return price, nil
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return def
}

// clampSalePrice drops a sale price that is not strictly below the regular
// price. A sale at or above full price is meaningless to every target feed,
// so it is discarded rather than failing the row.
func clampSalePrice(price float64, sale *float64) *float64 {
	if sale == nil || *sale >= price {
		return nil
	}
	return sale
}

func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return &f
	}
	return nil
}

// splitList splits a delimiter-joined cell, trimming entries and dropping
// empties.
func splitList(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// appendUnique concatenates URL lists preserving first-seen order.
func appendUnique(dst []string, urls ...string) []string {
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		seen := false
		for _, existing := range dst {
			if existing == u {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, u)
		}
	}
	return dst
}
