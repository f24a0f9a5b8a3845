package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/example/astroshop/pkg/models"
)

// ErrProductNotFound is returned when a product id is not in the
// catalog.
var ErrProductNotFound = errors.New("catalog: product not found")

// Catalog is the static product list. Records are seeded once and
// never created or destroyed at runtime; accessors return copies so
// callers cannot mutate the seed.
type Catalog struct {
	products []models.Product
}

func New() *Catalog {
	return &Catalog{products: seedProducts()}
}

// Products returns every catalog record.
func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// Product returns the record with the given id.
func (c *Catalog) Product(ctx context.Context, id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// ProductsByCategory filters the catalog by category. An unknown
// category yields an empty slice, not an error.
func (c *Catalog) ProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search matches the query case-insensitively against name,
// description, long description and category.
func (c *Catalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.LongDescription), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
