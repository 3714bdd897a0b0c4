package repositories

import (
	"marketplace/internal/models"
)

// CartRepository defines the interface for cart data access. Implementations
// must serialize operations on the same user's cart; Snapshot returns a
// point-in-time copy that later mutations do not affect.
type CartRepository interface {
	AddItem(userID string, item models.CartItem) error
	UpdateItemQuantity(userID, productID string, quantity int) error
	RemoveItem(userID, productID string) error
	Snapshot(userID string) ([]models.CartItem, error)
}
