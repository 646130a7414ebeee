package domain

// LineItem is one product's quantity record within a cart.
// Quantity is always >= 1; a cart holds at most one line item per product ID.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
