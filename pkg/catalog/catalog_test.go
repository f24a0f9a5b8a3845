package catalog

import (
	"context"
	"testing"

	"github.com/example/astroshop/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsReturnsFullSeed(t *testing.T) {
	c := New()

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Price > 0, "product %s has non-positive price", p.ID)
		assert.True(t, p.Category.Valid(), "product %s has unknown category", p.ID)
	}
}

func TestProductByID(t *testing.T) {
	c := New()

	p, err := c.Product(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "7 Mukhi Rudraksha", p.Name)
	assert.Equal(t, 49.99, p.Price)

	_, err = c.Product(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductsByCategory(t *testing.T) {
	c := New()

	stones, err := c.ProductsByCategory(context.Background(), models.CategoryStone)
	require.NoError(t, err)
	require.Len(t, stones, 3)
	for _, p := range stones {
		assert.Equal(t, models.CategoryStone, p.Category)
	}

	none, err := c.ProductsByCategory(context.Background(), models.Category("Unknown"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := New()

	byName, err := c.Search(context.Background(), "RUDRAKSHA")
	require.NoError(t, err)
	require.NotEmpty(t, byName)

	byCategory, err := c.Search(context.Background(), "stone")
	require.NoError(t, err)
	assert.True(t, len(byCategory) >= 3)

	byLongDescription, err := c.Search(context.Background(), "nepal")
	require.NoError(t, err)
	require.Len(t, byLongDescription, 1)
	assert.Equal(t, "Tibetan Singing Bowl", byLongDescription[0].Name)

	nothing, err := c.Search(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, nothing)
}

func TestProductsAreCopies(t *testing.T) {
	c := New()

	first, err := c.Products(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7 Mukhi Rudraksha", second[0].Name)
}
