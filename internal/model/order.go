package model

import (
	"strconv"
	"time"
)

// Discount is the percentage discount applied to an order, stored as a
// string tag. The set is closed; "none" means no discount.
type Discount string

const (
	DiscountNone   Discount = "none"
	DiscountFive   Discount = "5"
	DiscountTen    Discount = "10"
	DiscountTwenty Discount = "20"
)

// Valid reports whether d is one of the known discount tags.
func (d Discount) Valid() bool {
	switch d {
	case DiscountNone, DiscountFive, DiscountTen, DiscountTwenty:
		return true
	}
	return false
}

// Order is the canonical in-memory representation of a customer order.
// Instances are produced exclusively by Normalize; everything crossing the
// store boundary inward goes through it.
type Order struct {
	ID     string `json:"id"`
	Number int64  `json:"orderNumber,omitempty"`

	AFM          string `json:"afm"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`

	// OrderFor is the optional delivery date, empty when not set.
	OrderFor string `json:"orderFor,omitempty"`
	Remarks  string `json:"remarks,omitempty"`

	// CommunicationMethod and CommunicationValue are a pair: either is
	// meaningless for display without the other.
	CommunicationMethod string `json:"communicationMethod,omitempty"`
	CommunicationValue  string `json:"communicationValue,omitempty"`

	Products       Selection               `json:"products"`
	ProductDetails map[Category][]LineItem `json:"productDetails"`

	Discount  Discount  `json:"discount"`
	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
}

// DisplayNumber returns the human-facing order number when the store has
// assigned one, falling back to the opaque store id.
func (o *Order) DisplayNumber() string {
	if o.Number > 0 {
		return strconv.FormatInt(o.Number, 10)
	}
	return o.ID
}

// Clone returns a deep copy of the order so callers can hand copies outward
// without aliasing the cached maps and slices.
func (o *Order) Clone() Order {
	dup := *o
	dup.Products = make(Selection, len(o.Products))
	for c, selected := range o.Products {
		dup.Products[c] = selected
	}
	dup.ProductDetails = make(map[Category][]LineItem, len(o.ProductDetails))
	for c, items := range o.ProductDetails {
		dup.ProductDetails[c] = append([]LineItem(nil), items...)
	}
	return dup
}
