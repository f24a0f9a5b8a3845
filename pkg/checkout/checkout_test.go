package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"github.com/example/astroshop/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validRequest() Request {
	return Request{
		Email:           "celestial.traveler@email.com",
		ShippingName:    "Cosmo Stargazer",
		ShippingAddress: "123 Nebula Lane",
		ShippingCity:    "Orion",
		ShippingState:   "CA",
		ShippingZip:     "90210",
		CardName:        "Cosmo Stargazer",
		CardNumber:      "4242424242424242",
		CardExpiry:      "12/26",
		CardCvc:         "123",
	}
}

type fixture struct {
	cart   *store.CartStore
	stock  *store.StockLedger
	orders *store.OrderLedger
	orch   *Orchestrator
	cat    *catalog.Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	cat := catalog.New()
	logger := zap.NewNop()

	stock := store.NewStockLedger(st, cat, logger)
	require.NoError(t, stock.Seed(ctx))
	orders := store.NewOrderLedger(st, logger)

	return &fixture{
		cart:   store.NewCartStore(st, logger, "test-session"),
		stock:  stock,
		orders: orders,
		orch:   NewOrchestrator(orders, stock, logger),
		cat:    cat,
	}
}

func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	rudraksha, err := f.cat.Product(ctx, "1")
	require.NoError(t, err)
	sapphire, err := f.cat.Product(ctx, "2")
	require.NoError(t, err)
	require.NoError(t, f.cart.Add(ctx, rudraksha, 2))
	require.NoError(t, f.cart.Add(ctx, sapphire, 1))
}

func TestPurchaseHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.fillCart(t)

	order, err := f.orch.Purchase(ctx, f.cart, validRequest())
	require.NoError(t, err)

	// One pending order, most recent first.
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 399.97, order.Total, 0.0001)
	orders := f.orders.Orders(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	// Cart cleared.
	assert.Empty(t, f.cart.Items(ctx))

	// Stock decreased per purchased line.
	rudraksha, err := f.stock.Item(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 98, rudraksha.Quantity)
	sapphire, err := f.stock.Item(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 99, sapphire.Quantity)
}

func TestPurchaseEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.Purchase(context.Background(), f.cart, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPurchaseOversellClampsAtZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.stock.Update(ctx, "1", 1, nil)
	require.NoError(t, err)

	rudraksha, err := f.cat.Product(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, f.cart.Add(ctx, rudraksha, 5))

	// Backorders allowed: the purchase succeeds and stock floors at zero.
	order, err := f.orch.Purchase(ctx, f.cart, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)

	item, err := f.stock.Item(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestPurchaseCompensatesAppliedDecrements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rudraksha, err := f.cat.Product(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, f.cart.Add(ctx, rudraksha, 2))

	// A line whose product is gone from the catalog breaks the stock
	// step after the first decrement was applied.
	ghost := models.Product{ID: "deleted-product", Name: "Ghost", Price: 10}
	require.NoError(t, f.cart.Add(ctx, ghost, 1))

	_, err = f.orch.Purchase(ctx, f.cart, validRequest())
	require.ErrorIs(t, err, ErrPaymentFailed)

	// The applied decrement was rolled back and no order exists.
	item, err := f.stock.Item(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 100, item.Quantity)
	assert.Empty(t, f.orders.Orders(ctx))

	// The cart is untouched so the shopper can retry.
	assert.Len(t, f.cart.Items(ctx), 2)
}

type captureRecorder struct {
	placed chan models.Order
}

func (r *captureRecorder) OrderPlaced(ctx context.Context, order models.Order) {
	r.placed <- order
}

func TestPurchaseNotifiesRecorders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.fillCart(t)

	recorder := &captureRecorder{placed: make(chan models.Order, 1)}
	f.orch.AddRecorder(recorder)

	order, err := f.orch.Purchase(ctx, f.cart, validRequest())
	require.NoError(t, err)

	select {
	case got := <-recorder.placed:
		assert.Equal(t, order.ID, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("recorder was not called")
	}
}

func TestValidationErrorsBlockPurchase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.fillCart(t)

	req := validRequest()
	req.Email = "not-an-email"
	_, err := f.orch.Purchase(ctx, f.cart, req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	// Nothing moved.
	item, itemErr := f.stock.Item(ctx, "1")
	require.NoError(t, itemErr)
	assert.Equal(t, 100, item.Quantity)
	assert.Empty(t, f.orders.Orders(ctx))
	assert.Len(t, f.cart.Items(ctx), 2)
}
