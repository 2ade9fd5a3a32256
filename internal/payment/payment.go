// Package payment implements mobile-money phone validation and a simulated
// payment gateway for Moov Money and Airtel Money. A real deployment would
// integrate the operators' APIs behind the same Gateway interface.
package payment

import "context"

// Method identifies which mobile-money operator a checkout uses.
type Method string

const (
	MethodMoov   Method = "moov"
	MethodAirtel Method = "airtel"
)

// Valid reports whether m is one of the supported operators.
func (m Method) Valid() bool {
	return m == MethodMoov || m == MethodAirtel
}

// Request carries one payment attempt to the gateway.
type Request struct {
	PhoneNumber string
	Amount      float64
	Method      Method
	OrderNumber string
}

// Result is the outcome of one payment attempt. It is never persisted; the
// order service consumes it to decide the order's terminal status.
type Result struct {
	Success       bool    `json:"success"`
	Error         string  `json:"error,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	OrderNumber   string  `json:"order_number,omitempty"`
	Method        Method  `json:"payment_method,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// Gateway is the contract the order service depends on. Rejections and
// declines are reported through the Result, never as an error, so callers
// treat "rejected" and "gateway declined" uniformly.
type Gateway interface {
	Process(ctx context.Context, req Request) Result
}
