package models

// CartLine is one product/quantity pair in a shopper's basket. Lines
// are keyed by product id; a line's quantity is always positive (a
// quantity dropping to zero removes the line).
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
