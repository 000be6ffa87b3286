package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorCategories(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "1059", tr.EbayCategory("Men's Clothing"))
	assert.Equal(t, "212", tr.GoogleCategory("Men's Clothing"))
	assert.Equal(t, "1059", tr.EbayCategory(" Men's Clothing "))

	// Unmapped labels resolve to empty codes, never an error.
	assert.Equal(t, "", tr.EbayCategory("Garden Gnomes"))
	assert.Equal(t, "", tr.GoogleCategory("Garden Gnomes"))
	assert.Equal(t, "", tr.EbayCategory(""))
}

func TestTranslatorReverseCategories(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "Men's Clothing", tr.CategoryFromEbay("1059"))
	assert.Equal(t, "Men's Clothing", tr.CategoryFromGoogle("212"))
	assert.Equal(t, "Shoes & Footwear", tr.CategoryFromEbay("15709"))

	// Unknown codes fall back to the catch-all label.
	assert.Equal(t, "Everything Else", tr.CategoryFromEbay("99999"))
	assert.Equal(t, "Everything Else", tr.CategoryFromGoogle(""))
}

func TestTranslatorConditions(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, 1000, tr.EbayConditionID("NEW_WITH_TAGS"))
	assert.Equal(t, 1000, tr.EbayConditionID("new_with_tags"))
	assert.Equal(t, 4000, tr.EbayConditionID("SATISFACTORY"))
	assert.Equal(t, 1000, tr.EbayConditionID("new"))
	assert.Equal(t, 2500, tr.EbayConditionID("refurbished"))
	assert.Equal(t, 3000, tr.EbayConditionID("something else"))
	assert.Equal(t, 3000, tr.EbayConditionID(""))

	assert.Equal(t, "NEW_WITH_TAGS", tr.ConditionFromEbayID(1000))
	assert.Equal(t, "GOOD", tr.ConditionFromEbayID(3000))
	assert.Equal(t, "GOOD", tr.ConditionFromEbayID(12345))
}

func TestNormalizeFeedCondition(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"new", "new"},
		{"Used", "used"},
		{"refurbished", "refurbished"},
		{"NEW_WITH_TAGS", "new"},
		{"new_without_tags", "new"},
		{"VERY_GOOD_USED_CONDITION", "used"},
		{"GOOD", "used"},
		{"SATISFACTORY", "used"},
		{"", "new"},
		{"mystery", "new"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeFeedCondition(tt.input), tt.input)
	}
}
