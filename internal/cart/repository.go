package cart

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// Repository provides access to cart documents keyed by session.
type Repository interface {
	GetBySession(ctx context.Context, sessionID string) (Cart, error)
	// Upsert inserts the cart or replaces the existing one for the same
	// session.
	Upsert(ctx context.Context, c Cart) error
	DeleteBySession(ctx context.Context, sessionID string) error
}
