package models

// CartLine pairs a product snapshot with a quantity. The snapshot is stored by
// value so the cart survives upstream price or name edits until checkout.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary is derived from the current lines, never stored.
type CartSummary struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}
