package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func metricsOrder() Order {
	return Order{
		Products: Selection{
			CategoryCookies: true,
			CategoryFigures: true,
			CategoryPrints:  false,
		},
		ProductDetails: map[Category][]LineItem{
			CategoryCookies: {
				{ID: "i1", Type: "Βανίλια", Quantity: 10},
				{ID: "i2", Type: "Σοκολάτα", Quantity: 5},
			},
			CategoryFigures: {
				{ID: "i3", Type: "Μονόκερος", Quantity: 2},
			},
			// Stale items of an unselected category.
			CategoryPrints: {
				{ID: "i4", Type: "Αφίσα", Quantity: 9},
			},
		},
	}
}

func TestOrder_CategoryTotal(t *testing.T) {
	o := metricsOrder()

	assert.Equal(t, 15, o.CategoryTotal(CategoryCookies))
	assert.Equal(t, 2, o.CategoryTotal(CategoryFigures))
	assert.Equal(t, 9, o.CategoryTotal(CategoryPrints))
	assert.Equal(t, 0, o.CategoryTotal(CategorySets))
	assert.Equal(t, 0, o.CategoryTotal(CategoryOther))
}

func TestOrder_TotalUnits(t *testing.T) {
	o := metricsOrder()

	assert.Equal(t, 17, o.TotalUnits(CategoryCookies, CategoryFigures))
	assert.Equal(t, 26, o.TotalUnits(Categories...))
	assert.Equal(t, 0, o.TotalUnits())
}

func TestOrder_TotalCookies(t *testing.T) {
	o := metricsOrder()
	assert.Equal(t, 15, o.TotalCookies())

	empty := Order{ProductDetails: map[Category][]LineItem{}}
	assert.Equal(t, 0, empty.TotalCookies())
}

func TestOrder_ProductSummary(t *testing.T) {
	o := metricsOrder()

	// Unselected categories are omitted even though they hold items.
	assert.Equal(t, "Μπισκότα (15), Φιγούρα (2)", o.ProductSummary())
}

func TestOrder_ProductSummary_EnumerationOrder(t *testing.T) {
	o := Order{
		Products: Selection{
			CategoryOther:   true,
			CategoryCookies: true,
		},
		ProductDetails: map[Category][]LineItem{},
	}

	// Cookies always enumerate before other, regardless of map order.
	assert.Equal(t, "Μπισκότα (0), Άλλο (0)", o.ProductSummary())
}

func TestOrder_ProductSummary_Empty(t *testing.T) {
	o := Order{Products: Selection{}, ProductDetails: map[Category][]LineItem{}}
	assert.Equal(t, "", o.ProductSummary())
}
