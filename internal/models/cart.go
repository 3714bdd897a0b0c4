package models

// CartItem is a single product-id/quantity pair within a user's cart.
// A cart holds at most one item per product id; adding the same product
// again merges quantities instead of appending a second line.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
