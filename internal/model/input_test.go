package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderInput_Record_CoercesQuantities(t *testing.T) {
	input := &OrderInput{
		CustomerName: "Δήμητρα",
		Products:     Selection{CategoryCookies: true},
		ProductDetails: map[Category][]DraftItem{
			CategoryCookies: {
				{ID: "i1", Type: "Βανίλια", Quantity: "10"},
				{ID: "i2", Type: "Σοκολάτα", Quantity: ""},
				{ID: "i3", Type: "Κανέλα", Quantity: "abc"},
				{ID: "i4", Type: "Μέλι", Quantity: "-3"},
			},
		},
		Discount: DiscountTen,
	}

	rec := input.Record()

	details := rec["product_details"].(map[string]any)
	items := details["cookies"].([]map[string]any)
	require.Len(t, items, 4)
	assert.Equal(t, 10, items[0]["quantity"])
	assert.Equal(t, 0, items[1]["quantity"])
	assert.Equal(t, 0, items[2]["quantity"])
	assert.Equal(t, 0, items[3]["quantity"])

	// Persisted quantities are integers, never the raw edit-time strings.
	for _, item := range items {
		assert.IsType(t, 0, item["quantity"])
	}
}

func TestOrderInput_Record_UnselectedCategoryClearsItems(t *testing.T) {
	input := &OrderInput{
		Products: Selection{CategoryCookies: false, CategorySets: true},
		ProductDetails: map[Category][]DraftItem{
			// Items left behind after the category was toggled off.
			CategoryCookies: {{ID: "i1", Type: "stale", Quantity: "5"}},
			CategorySets:    {{ID: "i2", Type: "Σετ πάρτι", Quantity: "2"}},
		},
	}

	rec := input.Record()
	details := rec["product_details"].(map[string]any)

	assert.Empty(t, details["cookies"])
	assert.Len(t, details["sets"], 1)
	assert.Equal(t, false, rec["has_cookies"])
	assert.Equal(t, true, rec["has_sets"])
}

func TestOrderInput_Record_ToggleOffThenOnYieldsEmptyList(t *testing.T) {
	input := &OrderInput{
		Products: Selection{CategoryCookies: true},
		ProductDetails: map[Category][]DraftItem{
			CategoryCookies: {{ID: "i1", Type: "Βανίλια", Quantity: "10"}},
		},
	}

	// Toggle off: the write path persists an empty list.
	input.Products[CategoryCookies] = false
	input.ProductDetails[CategoryCookies] = nil
	rec := input.Record()
	assert.Empty(t, rec["product_details"].(map[string]any)["cookies"])

	// Toggle back on: an empty list again, never the pre-toggle items.
	input.Products[CategoryCookies] = true
	rec = input.Record()
	assert.Empty(t, rec["product_details"].(map[string]any)["cookies"])
}

func TestOrderInput_Record_Defaults(t *testing.T) {
	input := &OrderInput{}
	rec := input.Record()

	assert.Equal(t, "none", rec["discount"])
	assert.Equal(t, "", rec["customer_name"])

	// Status and created_at are never part of the record.
	_, hasStatus := rec["status"]
	_, hasCreatedAt := rec["created_at"]
	assert.False(t, hasStatus)
	assert.False(t, hasCreatedAt)

	details := rec["product_details"].(map[string]any)
	for _, c := range Categories {
		assert.Empty(t, details[string(c)])
		assert.NotNil(t, details[string(c)])
	}
}

func TestOrderInput_Record_GeneratesItemIDs(t *testing.T) {
	input := &OrderInput{
		Products: Selection{CategoryOther: true},
		ProductDetails: map[Category][]DraftItem{
			CategoryOther: {{Type: "Κουτί δώρου", Quantity: "1"}},
		},
	}

	rec := input.Record()
	items := rec["product_details"].(map[string]any)["other"].([]map[string]any)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0]["id"])
}
