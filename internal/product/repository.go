package product

import "context"

// Repository defines persistence operations for the catalog.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, p Product) error
}
