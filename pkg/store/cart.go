package store

import (
	"context"
	"errors"

	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"go.uber.org/zap"
)

// CartStore holds one shopper's line items, mirrored to storage under
// a per-session key. Every accessor reloads from storage first so
// concurrent sessions on the same key converge on last-writer-wins;
// write failures are swallowed and the in-memory mirror stays
// authoritative for the rest of the session.
type CartStore struct {
	storage storage.Storage
	logger  *zap.Logger
	key     string
	lines   []models.CartLine
}

func NewCartStore(st storage.Storage, logger *zap.Logger, sessionID string) *CartStore {
	return &CartStore{
		storage: st,
		logger:  logger.Named("cart"),
		key:     storage.ForSession(storage.KeyCart, sessionID),
	}
}

func (c *CartStore) reload(ctx context.Context) {
	var lines []models.CartLine
	err := c.storage.GetJSON(ctx, c.key, &lines)
	switch {
	case err == nil:
		c.lines = lines
	case errors.Is(err, storage.ErrKeyNotFound):
		// Never persisted: keep whatever the session has built up.
	default:
		c.logger.Warn("cart reload failed, keeping in-memory state",
			zap.String("key", c.key), zap.Error(err))
	}
}

func (c *CartStore) persist(ctx context.Context) {
	if err := c.storage.SetJSON(ctx, c.key, c.lines, 0); err != nil {
		c.logger.Warn("cart persist failed, state will not survive restart",
			zap.String("key", c.key), zap.Error(err))
	}
}

// Add inserts a line for the product or increases an existing line's
// quantity. Quantity must be positive.
func (c *CartStore) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.reload(ctx)
	found := false
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, models.CartLine{Product: product, Quantity: quantity})
	}
	c.persist(ctx)

	c.logger.Info("added to cart",
		zap.String("product_id", product.ID),
		zap.String("product", product.Name),
		zap.Int("quantity", quantity))
	return nil
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or
// less removes the line, identical to Remove.
func (c *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(ctx, productID)
		return
	}

	c.reload(ctx)
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.persist(ctx)
}

// Remove deletes the product's line. Removing an absent product is a
// no-op, not an error.
func (c *CartStore) Remove(ctx context.Context, productID string) {
	c.reload(ctx)
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	c.persist(ctx)
}

// Clear empties the cart.
func (c *CartStore) Clear(ctx context.Context) {
	c.reload(ctx)
	c.lines = nil
	c.persist(ctx)
}

// Items returns a copy of the current lines.
func (c *CartStore) Items(ctx context.Context) []models.CartLine {
	c.reload(ctx)
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the sum of all line quantities.
func (c *CartStore) Count(ctx context.Context) int {
	c.reload(ctx)
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Total is the sum of price times quantity, recomputed on every read
// so price or quantity edits are never served stale.
func (c *CartStore) Total(ctx context.Context) float64 {
	c.reload(ctx)
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}
