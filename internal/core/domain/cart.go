package domain

// CartItem is one selected product line in the cart. Lines are unique per
// product ID; quantity is always >= 1 (a line that would drop to 0 is removed).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the price contribution of this line.
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
