package product

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	products []Product
}

func (r *memoryRepo) List(_ context.Context, f Filter) ([]Product, error) {
	out := make([]Product, 0)
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	switch f.SortBy {
	case SortPriceAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *memoryRepo) Count(_ context.Context) (int, error) {
	return len(r.products), nil
}

func (r *memoryRepo) Insert(_ context.Context, p Product) error {
	r.products = append(r.products, p)
	return nil
}

func setupApp() *fiber.App {
	repo := &memoryRepo{products: []Product{
		{ID: "p1", Name: "Collier Élégant Doré", Price: 25000, Category: "bijoux"},
		{ID: "p2", Name: "AirPods Pro Sans Fil", Price: 85000, Category: "tech"},
		{ID: "p3", Name: "Ventilateur Miniature USB", Price: 12000, Category: "tech"},
	}}
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestGetProducts_FilterByCategory(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/api/products?category=tech", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var products []Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&products))
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "tech", p.Category)
	}
}

func TestGetProducts_SortByPriceAsc(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/api/products?sort_by=price-asc", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var products []Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&products))
	require.Len(t, products, 3)
	assert.Equal(t, 12000.0, products[0].Price)
	assert.Equal(t, 85000.0, products[2].Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/api/products/missing", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestSeedIfEmpty(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.SeedIfEmpty(context.Background()))
	assert.Len(t, repo.products, len(sampleProducts))

	// a second call must not duplicate the catalog
	require.NoError(t, svc.SeedIfEmpty(context.Background()))
	assert.Len(t, repo.products, len(sampleProducts))
}
