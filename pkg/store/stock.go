package store

import (
	"context"
	"errors"
	"time"

	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/models"
	"github.com/example/astroshop/pkg/storage"
	"go.uber.org/zap"
)

const (
	defaultStockQuantity  = 100
	defaultStockThreshold = 10
)

// StockAlerter receives fire-and-forget alerts when a record crosses
// into low stock.
type StockAlerter interface {
	LowStock(record models.StockRecord)
}

// StockLedger tracks per-product quantity and reorder threshold,
// mirrored to storage as one collection. Quantities are clamped to
// zero on every mutation: a decrement past zero floors rather than
// erroring (backorders are allowed).
type StockLedger struct {
	storage storage.Storage
	catalog *catalog.Catalog
	logger  *zap.Logger
	alerter StockAlerter
	records []models.StockRecord
}

func NewStockLedger(st storage.Storage, cat *catalog.Catalog, logger *zap.Logger) *StockLedger {
	return &StockLedger{
		storage: st,
		catalog: cat,
		logger:  logger.Named("stock"),
	}
}

// SetAlerter wires low-stock alerting. May be left unset.
func (s *StockLedger) SetAlerter(a StockAlerter) {
	s.alerter = a
}

// Seed materializes one record per catalog product with default
// quantity and threshold. It runs once at startup and is a no-op when
// storage already holds a stock collection.
func (s *StockLedger) Seed(ctx context.Context) error {
	err := s.storage.GetJSON(ctx, storage.KeyStock, &s.records)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrKeyNotFound) {
		return err
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	s.records = make([]models.StockRecord, 0, len(products))
	for _, p := range products {
		s.records = append(s.records, models.StockRecord{
			ProductID:         p.ID,
			Product:           p,
			Quantity:          defaultStockQuantity,
			LowStockThreshold: defaultStockThreshold,
			LastUpdated:       now,
		})
	}
	s.persist(ctx)
	s.logger.Info("stock seeded", zap.Int("products", len(s.records)))
	return nil
}

func (s *StockLedger) reload(ctx context.Context) {
	var records []models.StockRecord
	err := s.storage.GetJSON(ctx, storage.KeyStock, &records)
	switch {
	case err == nil:
		s.records = records
	case errors.Is(err, storage.ErrKeyNotFound):
	default:
		s.logger.Warn("stock reload failed, keeping in-memory state", zap.Error(err))
	}
}

func (s *StockLedger) persist(ctx context.Context) {
	if err := s.storage.SetJSON(ctx, storage.KeyStock, s.records, 0); err != nil {
		s.logger.Warn("stock persist failed, state will not survive restart", zap.Error(err))
	}
}

// Items returns a copy of every stock record.
func (s *StockLedger) Items(ctx context.Context) []models.StockRecord {
	s.reload(ctx)
	out := make([]models.StockRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Item returns the record for a product, creating a default record
// when the product exists in the catalog but has no stock entry yet.
func (s *StockLedger) Item(ctx context.Context, productID string) (models.StockRecord, error) {
	s.reload(ctx)
	for _, r := range s.records {
		if r.ProductID == productID {
			return r, nil
		}
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return models.StockRecord{}, ErrProductNotFound
	}
	record := models.StockRecord{
		ProductID:         productID,
		Product:           product,
		Quantity:          defaultStockQuantity,
		LowStockThreshold: defaultStockThreshold,
		LastUpdated:       time.Now().UTC(),
	}
	s.records = append(s.records, record)
	s.persist(ctx)
	return record, nil
}

// Update overwrites a record's quantity, clamped to zero, and its
// threshold when one is given. The record is created on first touch;
// an id outside the catalog fails with ErrProductNotFound.
func (s *StockLedger) Update(ctx context.Context, productID string, quantity int, threshold *int) (models.StockRecord, error) {
	s.reload(ctx)

	idx := -1
	for i := range s.records {
		if s.records[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		product, err := s.catalog.Product(ctx, productID)
		if err != nil {
			return models.StockRecord{}, ErrProductNotFound
		}
		s.records = append(s.records, models.StockRecord{
			ProductID:         productID,
			Product:           product,
			LowStockThreshold: defaultStockThreshold,
		})
		idx = len(s.records) - 1
	}

	wasLow := s.records[idx].IsLow()

	if quantity < 0 {
		quantity = 0
	}
	s.records[idx].Quantity = quantity
	if threshold != nil {
		s.records[idx].LowStockThreshold = *threshold
	}
	s.records[idx].LastUpdated = time.Now().UTC()
	record := s.records[idx]
	s.persist(ctx)

	if !wasLow && record.IsLow() && s.alerter != nil {
		s.alerter.LowStock(record)
	}
	return record, nil
}

// Decrease lowers a product's quantity, flooring at zero.
func (s *StockLedger) Decrease(ctx context.Context, productID string, quantity int) (models.StockRecord, error) {
	item, err := s.Item(ctx, productID)
	if err != nil {
		return models.StockRecord{}, err
	}
	return s.Update(ctx, productID, item.Quantity-quantity, nil)
}

// Increase raises a product's quantity.
func (s *StockLedger) Increase(ctx context.Context, productID string, quantity int) (models.StockRecord, error) {
	item, err := s.Item(ctx, productID)
	if err != nil {
		return models.StockRecord{}, err
	}
	return s.Update(ctx, productID, item.Quantity+quantity, nil)
}
