package notify

import (
	"context"
	"fmt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/astroshop/pkg/models"
	"go.uber.org/zap"
)

// Messages handled by the notification actor.
type orderPlaced struct {
	Order models.Order
}

type lowStock struct {
	Record models.StockRecord
}

// notificationActor fans out customer and back-office notifications.
// Delivery here is the log sink; an SMTP or push transport would hang
// off the same messages.
type notificationActor struct {
	logger *zap.Logger
}

func (a *notificationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *orderPlaced:
		a.logger.Info("order confirmation sent",
			zap.String("recipient", msg.Order.Customer.Email),
			zap.String("order_number", msg.Order.OrderNumber),
			zap.Float64("total", msg.Order.Total))

	case *lowStock:
		a.logger.Warn("low stock alert",
			zap.String("product_id", msg.Record.ProductID),
			zap.String("product", msg.Record.Product.Name),
			zap.Int("quantity", msg.Record.Quantity),
			zap.Int("threshold", msg.Record.LowStockThreshold))

	case *actor.Started:
		a.logger.Info("notification actor started")

	case *actor.Stopping:
		a.logger.Info("notification actor stopping")

	case *actor.Stopped:
		a.logger.Info("notification actor stopped")
	}
}

// Notifier wraps the actor system behind fire-and-forget methods. It
// satisfies both the checkout Recorder and the stock ledger's alerter
// contracts.
type Notifier struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func NewNotifier(logger *zap.Logger) (*Notifier, error) {
	system := actor.NewActorSystem()

	props := actor.PropsFromProducer(func() actor.Actor {
		return &notificationActor{logger: logger.Named("notification-actor")}
	})
	pid, err := system.Root.SpawnNamed(props, "notification-actor")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn notification actor: %w", err)
	}

	return &Notifier{system: system, pid: pid}, nil
}

// OrderPlaced queues an order confirmation.
func (n *Notifier) OrderPlaced(ctx context.Context, order models.Order) {
	n.system.Root.Send(n.pid, &orderPlaced{Order: order})
}

// LowStock queues a back-office low-stock alert.
func (n *Notifier) LowStock(record models.StockRecord) {
	n.system.Root.Send(n.pid, &lowStock{Record: record})
}

// Shutdown stops the actor system, draining queued messages.
func (n *Notifier) Shutdown() {
	n.system.Root.Poison(n.pid)
	n.system.Shutdown()
}
