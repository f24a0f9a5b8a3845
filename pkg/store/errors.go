package store

import "errors"

var (
	// ErrInvalidQuantity rejects non-positive add-to-cart quantities.
	ErrInvalidQuantity = errors.New("store: quantity must be positive")

	// ErrProductNotFound means the product id is not in the catalog.
	ErrProductNotFound = errors.New("store: product not found")

	// ErrOrderNotFound means no order with the given id exists.
	ErrOrderNotFound = errors.New("store: order not found")

	// ErrInvalidStatus rejects values outside the order status enum.
	ErrInvalidStatus = errors.New("store: invalid order status")
)
