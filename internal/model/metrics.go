package model

import (
	"fmt"
	"strings"
)

// Derived figures are always recomputed from the line items on demand.
// Nothing here is cached on the order, so partial edits can never leave a
// stale total behind.

// CategoryTotal sums the quantities of the category's line items. Empty or
// absent categories total 0.
func (o *Order) CategoryTotal(c Category) int {
	total := 0
	for _, item := range o.ProductDetails[c] {
		total += item.Quantity
	}
	return total
}

// TotalUnits sums CategoryTotal across the given categories.
func (o *Order) TotalUnits(categories ...Category) int {
	total := 0
	for _, c := range categories {
		total += o.CategoryTotal(c)
	}
	return total
}

// TotalCookies is the aggregate cookie count shown on listings, the detail
// view and the printable document.
func (o *Order) TotalCookies() int {
	return o.CategoryTotal(CategoryCookies)
}

// ProductSummary renders the selected categories as "<name> (<total>)"
// entries joined in enumeration order. Categories that are not selected are
// omitted even if they still carry stale line items.
func (o *Order) ProductSummary() string {
	var parts []string
	for _, c := range Categories {
		if !o.Products[c] {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%d)", c.Name(), o.CategoryTotal(c)))
	}
	return strings.Join(parts, ", ")
}
