package models

import "time"

// OrderStatus is the five-state order lifecycle. Admin actions may set
// any status; the enum itself is the only constraint enforced.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderPending:    {},
	OrderProcessing: {},
	OrderShipped:    {},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// CustomerInfo is the contact and shipping detail entered at checkout.
// Orders are keyed by this email, not by any authenticated identity.
type CustomerInfo struct {
	Email           string `json:"email"`
	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address"`
	ShippingCity    string `json:"shipping_city"`
	ShippingState   string `json:"shipping_state"`
	ShippingZip     string `json:"shipping_zip"`
}

// Order is an immutable-once-placed snapshot of purchased items plus a
// mutable status. Items are frozen at purchase time; later catalog or
// price changes never affect historical orders.
type Order struct {
	ID          string       `json:"id"`
	OrderNumber string       `json:"order_number"`
	Customer    CustomerInfo `json:"customer"`
	Items       []CartLine   `json:"items"`
	Total       float64      `json:"total"`
	Status      OrderStatus  `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
