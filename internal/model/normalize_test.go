package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_EmptyRecord(t *testing.T) {
	o := Normalize(map[string]any{})

	assert.Equal(t, "", o.ID)
	assert.Equal(t, "", o.CustomerName)
	assert.Equal(t, "", o.AFM)
	assert.Equal(t, "", o.Phone)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, DiscountNone, o.Discount)
	assert.WithinDuration(t, time.Now(), o.CreatedAt, time.Minute)

	for _, c := range Categories {
		assert.False(t, o.Products[c])
		assert.Empty(t, o.ProductDetails[c])
		assert.NotNil(t, o.ProductDetails[c])
	}
}

func TestNormalize_FullRecord(t *testing.T) {
	raw := map[string]any{
		"id":                   "ord-1",
		"order_number":         float64(42),
		"afm":                  "123456789",
		"customer_name":        "Δήμητρα",
		"phone":                "6970000000",
		"order_for":            "2026-09-15",
		"remarks":              "χωρίς ζάχαρη",
		"communication_method": "Instagram",
		"communication_value":  "@dimitra",
		"status":               "payment",
		"discount":             "10",
		"has_cookies":          true,
		"has_figures":          false,
		"product_details": map[string]any{
			"cookies": []any{
				map[string]any{"id": "i1", "type": "Βανίλια", "quantity": float64(10)},
				map[string]any{"id": "i2", "type": "Σοκολάτα", "quantity": "5"},
			},
		},
		"created_at": "2026-08-01T10:30:00Z",
	}

	o := Normalize(raw)

	assert.Equal(t, "ord-1", o.ID)
	assert.Equal(t, int64(42), o.Number)
	assert.Equal(t, "Δήμητρα", o.CustomerName)
	assert.Equal(t, "2026-09-15", o.OrderFor)
	assert.Equal(t, "Instagram", o.CommunicationMethod)
	assert.Equal(t, StatusPayment, o.Status)
	assert.Equal(t, Discount("10"), o.Discount)
	assert.True(t, o.Products[CategoryCookies])
	assert.False(t, o.Products[CategoryFigures])

	require.Len(t, o.ProductDetails[CategoryCookies], 2)
	assert.Equal(t, 10, o.ProductDetails[CategoryCookies][0].Quantity)
	assert.Equal(t, 5, o.ProductDetails[CategoryCookies][1].Quantity)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), o.CreatedAt)
}

func TestNormalize_StatusMigration(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Status
	}{
		{"current tag kept", "proforma_sent", StatusProformaSent},
		{"terminal tag kept", "shipped_unpaid", StatusShippedUnpaid},
		{"legacy completed migrates to shipped", "completed", StatusShipped},
		{"legacy cancelled defaults to pending", "cancelled", StatusPending},
		{"unknown defaults to pending", "weird", StatusPending},
		{"absent defaults to pending", nil, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Normalize(map[string]any{"status": tt.raw})
			assert.Equal(t, tt.want, o.Status)
		})
	}
}

func TestNormalize_QuantityCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"numeric string", "7", 7},
		{"float", float64(3), 3},
		{"non-numeric string", "πολλά", 0},
		{"blank", "", 0},
		{"negative clamps", float64(-4), 0},
		{"absent", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Normalize(map[string]any{
				"product_details": map[string]any{
					"cookies": []any{
						map[string]any{"id": "i1", "type": "x", "quantity": tt.raw},
					},
				},
			})
			require.Len(t, o.ProductDetails[CategoryCookies], 1)
			assert.Equal(t, tt.want, o.ProductDetails[CategoryCookies][0].Quantity)
		})
	}
}

func TestNormalize_ItemIDFallback(t *testing.T) {
	o := Normalize(map[string]any{
		"product_details": map[string]any{
			"figures": []any{
				map[string]any{"type": "Μονόκερος", "quantity": float64(1)},
				map[string]any{"type": "Δεινόσαυρος", "quantity": float64(2)},
			},
		},
	})

	items := o.ProductDetails[CategoryFigures]
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].ID)
	assert.NotEmpty(t, items[1].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestNormalize_MalformedDetails(t *testing.T) {
	o := Normalize(map[string]any{
		"product_details": map[string]any{
			"cookies": "not a list",
			"sets":    []any{"not a map", map[string]any{"id": "ok", "type": "t", "quantity": float64(2)}},
		},
	})

	assert.Empty(t, o.ProductDetails[CategoryCookies])
	require.Len(t, o.ProductDetails[CategorySets], 1)
	assert.Equal(t, 2, o.ProductDetails[CategorySets][0].Quantity)
}

func TestNormalize_KeepsStaleItemsOfUnselectedCategories(t *testing.T) {
	// The normaliser is permissive on read; only the write path clears
	// items of unselected categories.
	o := Normalize(map[string]any{
		"has_cookies": false,
		"product_details": map[string]any{
			"cookies": []any{
				map[string]any{"id": "i1", "type": "stale", "quantity": float64(3)},
			},
		},
	})

	assert.False(t, o.Products[CategoryCookies])
	assert.Len(t, o.ProductDetails[CategoryCookies], 1)
}
