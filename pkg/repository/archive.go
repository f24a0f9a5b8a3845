package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OrderArchive mirrors placed orders into MySQL for reporting. The
// archive is written best-effort after checkout and is never read on
// the purchase path; the key-value ledger stays authoritative.
type OrderArchive struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderArchive(cfg *config.MySQLConfig, logger *zap.Logger) (*OrderArchive, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := db.AutoMigrate(&models.ArchivedOrder{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return &OrderArchive{db: db, logger: logger.Named("archive")}, nil
}

// OrderPlaced satisfies the checkout Recorder contract.
func (a *OrderArchive) OrderPlaced(ctx context.Context, order models.Order) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		a.logger.Warn("archive serialize failed", zap.String("order_id", order.ID), zap.Error(err))
		return
	}

	row := &models.ArchivedOrder{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.Customer.Email,
		Items:         string(itemsJSON),
		Total:         order.Total,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if err := a.db.WithContext(ctx).Create(row).Error; err != nil {
		a.logger.Warn("archive write failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}

// Recent returns the latest archived orders for reporting.
func (a *OrderArchive) Recent(ctx context.Context, limit int) ([]models.ArchivedOrder, error) {
	var rows []models.ArchivedOrder
	err := a.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list archived orders: %w", err)
	}
	return rows, nil
}

func (a *OrderArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
