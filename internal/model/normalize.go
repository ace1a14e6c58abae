package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Normalize converts a raw persisted record into a well-formed Order. It is
// a total function: whatever shape the record has, the result satisfies the
// entity invariants, with defaults substituted for missing or malformed
// fields. Untyped store data must never flow past this boundary.
//
// Normalize is deliberately permissive: it does not clear line items of
// unselected categories. That invariant is enforced on the write path only
// (see OrderInput), so stale rows remain readable exactly as stored.
func Normalize(raw map[string]any) Order {
	o := Order{
		ID:                  asString(raw["id"]),
		Number:              asInt64(raw["order_number"]),
		AFM:                 asString(raw["afm"]),
		CustomerName:        asString(raw["customer_name"]),
		Phone:               asString(raw["phone"]),
		OrderFor:            asString(raw["order_for"]),
		Remarks:             asString(raw["remarks"]),
		CommunicationMethod: asString(raw["communication_method"]),
		CommunicationValue:  asString(raw["communication_value"]),
		Products: Selection{
			CategoryCookies: asBool(raw["has_cookies"]),
			CategoryFigures: asBool(raw["has_figures"]),
			CategorySets:    asBool(raw["has_sets"]),
			CategoryToppers: asBool(raw["has_toppers"]),
			CategoryPrints:  asBool(raw["has_prints"]),
			CategoryOther:   asBool(raw["has_other"]),
		},
		ProductDetails: make(map[Category][]LineItem, len(Categories)),
		Discount:       asDiscount(raw["discount"]),
		CreatedAt:      asTime(raw["created_at"]),
		Status:         NormalizeStatus(asString(raw["status"])),
	}

	details, _ := raw["product_details"].(map[string]any)
	for _, c := range Categories {
		o.ProductDetails[c] = normalizeItems(details[string(c)])
	}

	return o
}

// normalizeItems coerces a raw category value into a line-item list. Values
// that are not a sequence are treated as empty.
func normalizeItems(raw any) []LineItem {
	seq, ok := raw.([]any)
	if !ok {
		return []LineItem{}
	}

	items := make([]LineItem, 0, len(seq))
	for _, entry := range seq {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := LineItem{
			ID:       asString(fields["id"]),
			Type:     asString(fields["type"]),
			Quantity: asQuantity(fields["quantity"]),
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		items = append(items, item)
	}
	return items
}

// asString coerces scalar values to their string form; anything else is "".
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	}
	return ""
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	case float64:
		return b != 0
	case int64:
		return b != 0
	}
	return false
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err == nil {
			return parsed
		}
	}
	return 0
}

// asQuantity is the best-effort numeric parse for line-item quantities.
// Non-numeric values become 0, and negatives are clamped to 0.
func asQuantity(v any) int {
	q := asInt64(v)
	if q < 0 {
		return 0
	}
	return int(q)
}

func asDiscount(v any) Discount {
	s := asString(v)
	if s == "" {
		return DiscountNone
	}
	return Discount(s)
}

// asTime parses a creation timestamp from the store. Postgres drivers hand
// back time.Time directly; the REST backend delivers strings. Unparseable
// values default to the normalisation time.
func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Now()
}
