package models

import "time"

// ArchivedOrder is the relational mirror of a placed order, written
// best-effort after checkout for reporting. Items are stored as a JSON
// text column.
type ArchivedOrder struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderNumber   string     `gorm:"type:varchar(40);uniqueIndex" json:"order_number"`
	CustomerEmail string     `gorm:"type:varchar(100);index" json:"customer_email"`
	Items         string     `gorm:"type:text" json:"items"` // JSON string
	Total         float64    `gorm:"type:decimal(10,2)" json:"total"`
	Status        string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" json:"-"`
}

func (ArchivedOrder) TableName() string {
	return "orders"
}
