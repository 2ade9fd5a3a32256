package product

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SeedIfEmpty inserts the sample catalog when the products table has no
// rows yet, so a fresh deployment serves a browsable shop immediately.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	now := time.Now().UTC()
	for _, p := range sampleProducts {
		p.ID = uuid.NewString()
		p.InStock = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := s.repo.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
