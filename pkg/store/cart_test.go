package store

import (
	"context"
	"testing"

	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testProduct(id, name string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: models.CategoryStone,
	}
}

func newTestCart(t *testing.T) (*CartStore, *storage.MemoryStorage) {
	t.Helper()
	st := storage.NewMemoryStorage()
	return NewCartStore(st, zap.NewNop(), "test-session"), st
}

func TestAddMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)
	p := testProduct("1", "7 Mukhi Rudraksha", 49.99)

	require.NoError(t, cart.Add(ctx, p, 1))
	require.NoError(t, cart.Add(ctx, p, 2))

	items := cart.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.Count(ctx))
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)
	p := testProduct("1", "7 Mukhi Rudraksha", 49.99)

	assert.ErrorIs(t, cart.Add(ctx, p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(ctx, p, -3), ErrInvalidQuantity)
	assert.Empty(t, cart.Items(ctx))
}

func TestCountAndTotalScenario(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	require.NoError(t, cart.Add(ctx, testProduct("1", "7 Mukhi Rudraksha", 49.99), 2))
	require.NoError(t, cart.Add(ctx, testProduct("2", "Blue Sapphire (Neelam)", 299.99), 1))

	assert.Equal(t, 3, cart.Count(ctx))
	assert.InDelta(t, 399.97, cart.Total(ctx), 0.0001)
}

func TestCountMatchesLineQuantitiesUnderAnySequence(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)
	a := testProduct("1", "A", 10)
	b := testProduct("2", "B", 20)

	require.NoError(t, cart.Add(ctx, a, 5))
	require.NoError(t, cart.Add(ctx, b, 2))
	cart.UpdateQuantity(ctx, a.ID, 1)
	cart.Remove(ctx, b.ID)
	require.NoError(t, cart.Add(ctx, b, 4))
	cart.UpdateQuantity(ctx, b.ID, 0)

	sum := 0
	for _, line := range cart.Items(ctx) {
		sum += line.Quantity
	}
	assert.Equal(t, sum, cart.Count(ctx))
	assert.True(t, cart.Count(ctx) >= 0)
	assert.Equal(t, 1, cart.Count(ctx))
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	p := testProduct("1", "A", 10)
	q := testProduct("2", "B", 20)

	viaUpdate, _ := newTestCart(t)
	require.NoError(t, viaUpdate.Add(ctx, p, 2))
	require.NoError(t, viaUpdate.Add(ctx, q, 1))
	viaUpdate.UpdateQuantity(ctx, p.ID, 0)

	viaRemove, _ := newTestCart(t)
	require.NoError(t, viaRemove.Add(ctx, p, 2))
	require.NoError(t, viaRemove.Add(ctx, q, 1))
	viaRemove.Remove(ctx, p.ID)

	assert.Equal(t, viaRemove.Items(ctx), viaUpdate.Items(ctx))
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(ctx, testProduct("1", "A", 10), 1))

	cart.Remove(ctx, "missing")
	assert.Equal(t, 1, cart.Count(ctx))
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)
	require.NoError(t, cart.Add(ctx, testProduct("1", "A", 10), 3))

	cart.Clear(ctx)
	assert.Empty(t, cart.Items(ctx))
	assert.Equal(t, 0, cart.Count(ctx))
	assert.Zero(t, cart.Total(ctx))
}

func TestPersistFailureKeepsSessionState(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	st.FailWrites = true
	cart := NewCartStore(st, zap.NewNop(), "test-session")

	// Writes fail, but the session keeps working.
	require.NoError(t, cart.Add(ctx, testProduct("1", "A", 10), 2))
	assert.Equal(t, 2, cart.Count(ctx))

	// A fresh store over the same key sees nothing: nothing survived.
	fresh := NewCartStore(st, zap.NewNop(), "test-session")
	assert.Empty(t, fresh.Items(ctx))
}

func TestLastWriterWinsAcrossSessionsOnSameKey(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	tabA := NewCartStore(st, zap.NewNop(), "shared")
	tabB := NewCartStore(st, zap.NewNop(), "shared")

	require.NoError(t, tabA.Add(ctx, testProduct("1", "A", 10), 1))
	require.NoError(t, tabB.Add(ctx, testProduct("2", "B", 20), 2))

	// tabA reloads before reading and observes tabB's write.
	items := tabA.Items(ctx)
	require.Len(t, items, 2)
}
