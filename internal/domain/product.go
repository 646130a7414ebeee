package domain

// Product is the display-ready representation of a remote catalog record.
// It is immutable after transformation; the pipeline builds a fresh slice
// per fetch and never mutates entries in place.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	SalePrice   float64  `json:"sale_price,omitempty"` // set only when IsSale is true
	Rating      float64  `json:"rating"`               // 0-5
	ReviewCount int      `json:"review_count"`
	Features    []string `json:"features"`
	IsNew       bool     `json:"is_new"`
	IsSale      bool     `json:"is_sale"`
	Stock       int      `json:"stock"`
}
