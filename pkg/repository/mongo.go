package repository

import (
	"context"
	"time"

	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// AuditTrail records storefront mutations (orders placed, status
// changes, stock edits) in MongoDB. Writes are fire-and-forget:
// failures are logged, never propagated.
type AuditTrail struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
	logger   *zap.Logger
}

func NewAuditTrail(cfg *config.MongoDBConfig, logger *zap.Logger) (*AuditTrail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &AuditTrail{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
		logger:   logger.Named("audit"),
	}, nil
}

func (a *AuditTrail) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *AuditTrail) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

// AuditEntry is one recorded mutation.
type AuditEntry struct {
	ID        string    `bson:"_id,omitempty"`
	Action    string    `bson:"action"`
	EntityID  string    `bson:"entity_id"`
	Data      bson.M    `bson:"data"`
	CreatedAt time.Time `bson:"created_at"`
}

func (a *AuditTrail) Record(ctx context.Context, action, entityID string, data bson.M) {
	collection := a.database.Collection(a.config.Collection)
	entry := AuditEntry{
		Action:    action,
		EntityID:  entityID,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		a.logger.Warn("audit write failed",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

// OrderPlaced satisfies the checkout Recorder contract.
func (a *AuditTrail) OrderPlaced(ctx context.Context, order models.Order) {
	a.Record(ctx, "order_created", order.ID, bson.M{
		"order_number":   order.OrderNumber,
		"customer_email": order.Customer.Email,
		"total":          order.Total,
		"line_count":     len(order.Items),
	})
}

// StatusChanged records an admin order-status mutation.
func (a *AuditTrail) StatusChanged(ctx context.Context, order models.Order) {
	a.Record(ctx, "order_status_updated", order.ID, bson.M{
		"order_number": order.OrderNumber,
		"status":       string(order.Status),
	})
}

// StockUpdated records an admin stock edit.
func (a *AuditTrail) StockUpdated(ctx context.Context, record models.StockRecord) {
	a.Record(ctx, "stock_updated", record.ProductID, bson.M{
		"quantity":  record.Quantity,
		"threshold": record.LowStockThreshold,
	})
}

// Entries returns the most recent audit entries for one entity.
func (a *AuditTrail) Entries(ctx context.Context, entityID string, limit int64) ([]*AuditEntry, error) {
	collection := a.database.Collection(a.config.Collection)

	filter := bson.M{"entity_id": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*AuditEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
