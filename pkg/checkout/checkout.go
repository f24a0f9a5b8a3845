package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/store"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart rejects a purchase with no line items.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrPaymentFailed is the single generic failure surfaced to the
	// shopper when any step of the purchase sequence breaks.
	ErrPaymentFailed = errors.New("checkout: payment failed")
)

// Recorder receives best-effort post-purchase work (audit entries,
// archive rows, confirmation notifications). Recorder failures never
// fail a purchase.
type Recorder interface {
	OrderPlaced(ctx context.Context, order models.Order)
}

// Orchestrator converts a cart into an order plus stock decrements.
// Stock is decremented before the order is created and every applied
// decrement is compensated if a later step fails, so an order never
// exists without its stock movement.
type Orchestrator struct {
	orders    *store.OrderLedger
	stock     *store.StockLedger
	logger    *zap.Logger
	recorders []Recorder
}

func NewOrchestrator(orders *store.OrderLedger, stock *store.StockLedger, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		orders: orders,
		stock:  stock,
		logger: logger.Named("checkout"),
	}
}

// AddRecorder registers a post-purchase recorder.
func (o *Orchestrator) AddRecorder(r Recorder) {
	o.recorders = append(o.recorders, r)
}

type appliedDecrement struct {
	productID string
	quantity  int
}

// Purchase runs the checkout sequence: validate the form, decrement
// stock per line, create the order, clear the cart. Decrements floor
// at zero (backorders allowed); a failure after partial decrements
// re-increases what was applied before reporting the generic payment
// error.
func (o *Orchestrator) Purchase(ctx context.Context, cart *store.CartStore, req Request) (models.Order, error) {
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}

	items := cart.Items(ctx)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	total := cart.Total(ctx)

	applied := make([]appliedDecrement, 0, len(items))
	for _, line := range items {
		if _, err := o.stock.Decrease(ctx, line.Product.ID, line.Quantity); err != nil {
			o.logger.Error("stock decrement failed, compensating",
				zap.String("product_id", line.Product.ID), zap.Error(err))
			o.compensate(ctx, applied)
			return models.Order{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		applied = append(applied, appliedDecrement{productID: line.Product.ID, quantity: line.Quantity})
	}

	order, err := o.orders.Create(ctx, req.customerInfo(), items, total)
	if err != nil {
		o.logger.Error("order creation failed, compensating", zap.Error(err))
		o.compensate(ctx, applied)
		return models.Order{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	cart.Clear(ctx)

	for _, r := range o.recorders {
		go r.OrderPlaced(context.Background(), order)
	}

	o.logger.Info("purchase complete",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total))
	return order, nil
}

func (o *Orchestrator) compensate(ctx context.Context, applied []appliedDecrement) {
	for _, d := range applied {
		if _, err := o.stock.Increase(ctx, d.productID, d.quantity); err != nil {
			o.logger.Error("stock compensation failed",
				zap.String("product_id", d.productID),
				zap.Int("quantity", d.quantity),
				zap.Error(err))
		}
	}
}
