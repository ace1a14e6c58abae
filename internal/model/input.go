package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DraftItem is the edit-time form of a line item. Quantity stays a string
// so a form can hold it blank or half-typed; it is coerced to an integer
// only at the write boundary. Draft values must never reach stored records
// or derived computations directly.
type DraftItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Quantity string `json:"quantity"`
}

// OrderInput carries the caller-editable fields of an order for create and
// update calls. Status and creation time are intentionally absent: status
// changes go through SetStatus and the creation time is assigned once by
// the store.
type OrderInput struct {
	AFM                 string                   `json:"afm"`
	CustomerName        string                   `json:"customerName"`
	Phone               string                   `json:"phone"`
	OrderFor            string                   `json:"orderFor"`
	Remarks             string                   `json:"remarks"`
	CommunicationMethod string                   `json:"communicationMethod"`
	CommunicationValue  string                   `json:"communicationValue"`
	Products            Selection                `json:"products"`
	ProductDetails      map[Category][]DraftItem `json:"productDetails"`
	Discount            Discount                 `json:"discount"`
}

// Record builds the snake_case store record for the input, applying the
// strict write-path rules:
//
//   - a category that is not selected persists an empty item list, so
//     toggling a category off clears its items for good;
//   - every quantity is coerced to a non-negative integer, never the raw
//     string form used during editing;
//   - an absent discount persists as "none".
//
// Status, id and created_at are never part of the record; the collection
// service supplies status on insert and the store owns the rest.
func (in *OrderInput) Record() map[string]any {
	discount := in.Discount
	if discount == "" {
		discount = DiscountNone
	}

	details := make(map[string]any, len(Categories))
	for _, c := range Categories {
		details[string(c)] = in.persistedItems(c)
	}

	return map[string]any{
		"afm":                  in.AFM,
		"customer_name":        in.CustomerName,
		"phone":                in.Phone,
		"order_for":            in.OrderFor,
		"remarks":              in.Remarks,
		"communication_method": in.CommunicationMethod,
		"communication_value":  in.CommunicationValue,
		"discount":             string(discount),
		"has_cookies":          in.Products[CategoryCookies],
		"has_figures":          in.Products[CategoryFigures],
		"has_sets":             in.Products[CategorySets],
		"has_toppers":          in.Products[CategoryToppers],
		"has_prints":           in.Products[CategoryPrints],
		"has_other":            in.Products[CategoryOther],
		"product_details":      details,
	}
}

// persistedItems converts the category's draft items into their stored
// form. Unselected categories always persist empty.
func (in *OrderInput) persistedItems(c Category) []map[string]any {
	items := []map[string]any{}
	if !in.Products[c] {
		return items
	}
	for _, draft := range in.ProductDetails[c] {
		id := draft.ID
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, map[string]any{
			"id":       id,
			"type":     draft.Type,
			"quantity": coerceQuantity(draft.Quantity),
		})
	}
	return items
}

// coerceQuantity parses a draft quantity string. Blank or non-numeric input
// becomes 0; negatives clamp to 0.
func coerceQuantity(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q < 0 {
		return 0
	}
	return q
}
