package repositories

import (
	"marketplace/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create fills in the order's ID, status and timestamps and stores it.
	Create(order *models.Order) error
	// UpdateStatus overwrites the status unconditionally. An unknown id is
	// a silent no-op: the payment-callback path must not surface it.
	UpdateStatus(id string, status models.OrderStatus) error
	// Cancel transitions a pending order to failed. It returns
	// models.ErrCannotCancelOrder when the order is in any other status
	// and a NotFoundError when the order does not exist.
	Cancel(id string) error
	GetByID(id string) (*models.Order, error)
	// GetByUser returns the user's orders in insertion order; an unknown
	// user yields an empty slice, never an error.
	GetByUser(userID string) ([]models.Order, error)
}
