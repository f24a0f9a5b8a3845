package models

import "time"

// StockRecord tracks inventory for a single product. Quantity is never
// negative: mutations clamp at zero.
type StockRecord struct {
	ProductID         string    `json:"product_id"`
	Product           Product   `json:"product"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastUpdated       time.Time `json:"last_updated"`
}

// IsLow reports whether the record is at or below its reorder
// threshold. IsOut implies IsLow.
func (s StockRecord) IsLow() bool {
	return s.Quantity <= s.LowStockThreshold
}

func (s StockRecord) IsOut() bool {
	return s.Quantity == 0
}
