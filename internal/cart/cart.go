package cart

import "time"

// Item is one product line in a cart. The product fields are a snapshot of
// the catalog entry at add time.
type Item struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// Cart is a session-scoped collection of pending purchase lines.
type Cart struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// recalc keeps every subtotal and the cart total consistent with the
// current quantities.
func (c *Cart) recalc() {
	var total float64
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].ProductPrice * float64(c.Items[i].Quantity)
		total += c.Items[i].Subtotal
	}
	c.Total = total
}
