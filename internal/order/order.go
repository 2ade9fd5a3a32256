package order

import (
	"time"

	"github.com/darlingboutique/boutique-backend/internal/payment"
)

// Status is the order lifecycle state. Payment drives pending into confirmed
// or cancelled; the later states are reached only through the administrative
// status update.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Item is a line of an order. Product fields are a snapshot captured at
// add-to-cart time; prices are not re-checked against the catalog.
type Item struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// Order represents one checkout attempt.
type Order struct {
	ID            string         `json:"id"`
	Number        string         `json:"order_number"`
	UserID        *string        `json:"user_id,omitempty"`
	SessionID     *string        `json:"session_id,omitempty"`
	Items         []Item         `json:"items"`
	Total         float64        `json:"total"`
	PaymentMethod payment.Method `json:"payment_method"`
	PhoneNumber   string         `json:"phone_number"`
	Status        Status         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
