package model

// Category identifies one of the fixed product groupings an order can contain.
// The set is closed: there are no dynamic categories.
type Category string

const (
	CategoryCookies Category = "cookies"
	CategoryFigures Category = "figures"
	CategorySets    Category = "sets"
	CategoryToppers Category = "toppers"
	CategoryPrints  Category = "prints"
	CategoryOther   Category = "other"
)

// Categories lists every product category in display enumeration order.
// Listing, detail and print views all iterate in this order.
var Categories = []Category{
	CategoryCookies,
	CategoryFigures,
	CategorySets,
	CategoryToppers,
	CategoryPrints,
	CategoryOther,
}

var categoryNames = map[Category]string{
	CategoryCookies: "Μπισκότα",
	CategoryFigures: "Φιγούρα",
	CategorySets:    "Σετάκια",
	CategoryToppers: "Τόπερς",
	CategoryPrints:  "Εκτυπώσεις",
	CategoryOther:   "Άλλο",
}

// Name returns the localised display name of the category.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Selection records which product categories are included in an order.
// A category that is not selected must persist with an empty item list;
// that rule is enforced on the write path, not by the normaliser.
type Selection map[Category]bool

// LineItem is a single product type plus quantity entry within a category.
// Quantity is always a non-negative integer once an order has been normalised.
type LineItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}
