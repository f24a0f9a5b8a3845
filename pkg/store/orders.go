package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderLedger is the append-only collection of placed orders. Orders
// are never deleted; only their status and UpdatedAt mutate after
// creation. Item snapshots are frozen at purchase time.
type OrderLedger struct {
	storage storage.Storage
	logger  *zap.Logger
	orders  []models.Order
}

func NewOrderLedger(st storage.Storage, logger *zap.Logger) *OrderLedger {
	return &OrderLedger{
		storage: st,
		logger:  logger.Named("orders"),
	}
}

func (o *OrderLedger) reload(ctx context.Context) {
	var orders []models.Order
	err := o.storage.GetJSON(ctx, storage.KeyOrders, &orders)
	switch {
	case err == nil:
		o.orders = orders
	case errors.Is(err, storage.ErrKeyNotFound):
	default:
		o.logger.Warn("order reload failed, keeping in-memory state", zap.Error(err))
	}
}

func (o *OrderLedger) persist(ctx context.Context) {
	if err := o.storage.SetJSON(ctx, storage.KeyOrders, o.orders, 0); err != nil {
		o.logger.Warn("order persist failed, state will not survive restart", zap.Error(err))
	}
}

// newOrderNumber builds the human-readable order reference. Timestamp
// plus random suffix: not collision-free across processes, acceptable
// for a single-tenant ledger.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// Create appends a pending order snapshotting the given cart lines
// verbatim.
func (o *OrderLedger) Create(ctx context.Context, customer models.CustomerInfo, items []models.CartLine, total float64) (models.Order, error) {
	o.reload(ctx)

	snapshot := make([]models.CartLine, len(items))
	copy(snapshot, items)

	now := time.Now().UTC()
	order := models.Order{
		ID:          uuid.NewString(),
		OrderNumber: newOrderNumber(),
		Customer:    customer,
		Items:       snapshot,
		Total:       total,
		Status:      models.OrderPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	o.orders = append(o.orders, order)
	o.persist(ctx)

	o.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.Int("line_count", len(order.Items)))
	return order, nil
}

// Orders returns every order, most recent first.
func (o *OrderLedger) Orders(ctx context.Context) []models.Order {
	o.reload(ctx)
	out := make([]models.Order, len(o.orders))
	copy(out, o.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Order returns the order with the given id.
func (o *OrderLedger) Order(ctx context.Context, id string) (models.Order, error) {
	o.reload(ctx)
	for _, order := range o.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// UpdateStatus overwrites an order's status. Any enum value may follow
// any other; only membership in the enum is checked.
func (o *OrderLedger) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidStatus
	}

	o.reload(ctx)
	for i := range o.orders {
		if o.orders[i].ID == id {
			o.orders[i].Status = status
			o.orders[i].UpdatedAt = time.Now().UTC()
			order := o.orders[i]
			o.persist(ctx)
			o.logger.Info("order status updated",
				zap.String("order_id", id),
				zap.String("status", string(status)))
			return order, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
