package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/darlingboutique/boutique-backend/internal/product"
)

// ProductCatalog is the slice of the product capability the cart needs:
// resolving a product to snapshot into a new cart line.
type ProductCatalog interface {
	GetByID(ctx context.Context, id string) (product.Product, error)
}

// Service orchestrates cart mutations. Every mutation recomputes line
// subtotals and the cart total before persisting.
type Service struct {
	repo    Repository
	catalog ProductCatalog
}

func NewService(repo Repository, catalog ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Get returns the cart for a session, creating an empty one when absent.
func (s *Service) Get(ctx context.Context, sessionID string) (Cart, error) {
	c, err := s.repo.GetBySession(ctx, sessionID)
	if err == nil {
		return c, nil
	}
	if err != ErrNotFound {
		return Cart{}, err
	}

	c = emptyCart(sessionID)
	if err := s.repo.Upsert(ctx, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// AddItem puts qty units of a product into the cart, merging with an
// existing line for the same product.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, qty int) (Cart, error) {
	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, Item{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			ProductImage: p.Image,
			Quantity:     qty,
		})
	}

	return c, s.save(ctx, &c)
}

// UpdateItem sets the quantity of an existing line.
func (s *Service) UpdateItem(ctx context.Context, sessionID, productID string, qty int) (Cart, error) {
	c, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		return Cart{}, ErrItemNotFound
	}

	return c, s.save(ctx, &c)
}

// RemoveItem drops a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (Cart, error) {
	c, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept

	return c, s.save(ctx, &c)
}

// Clear replaces the cart with an empty one for the session.
func (s *Service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	c := emptyCart(sessionID)
	return c, s.repo.Upsert(ctx, c)
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	c.recalc()
	c.UpdatedAt = time.Now().UTC()
	return s.repo.Upsert(ctx, *c)
}

func emptyCart(sessionID string) Cart {
	now := time.Now().UTC()
	return Cart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
