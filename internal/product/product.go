package product

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("product not found")

// Product is a catalog entry. JSON field names follow the public API
// contract (inStock is camelCase for historical reasons).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sort keys accepted by the listing endpoint.
const (
	SortName      = "name"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// Filter narrows and orders a product listing. Empty fields are ignored;
// an unknown SortBy falls back to name ordering.
type Filter struct {
	Category    string
	Subcategory string
	Search      string
	SortBy      string
}
