package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Filter narrows an order listing. Empty fields are ignored.
type Filter struct {
	SessionID string
	UserID    string
	Statuses  []Status
}

// Repository defines persistence operations for orders.
type Repository interface {
	Insert(ctx context.Context, ord Order) error
	// Replace overwrites the stored order with the given identity.
	// Last-writer-wins; there is no optimistic concurrency check.
	Replace(ctx context.Context, id string, ord Order) error
	FindByID(ctx context.Context, id string) (Order, error)
	// Find returns matching orders newest-created-first.
	Find(ctx context.Context, f Filter) ([]Order, error)
}

// CartStore is the slice of the cart capability the order service consumes:
// clearing the originating cart after a confirmed checkout.
type CartStore interface {
	DeleteBySession(ctx context.Context, sessionID string) error
}
