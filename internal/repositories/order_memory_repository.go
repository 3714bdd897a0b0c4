package repositories

import (
	"sync"
	"time"

	"marketplace/internal/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// Orders live in a slice so GetByUser returns them in insertion order.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Create assigns a fresh unique ID, sets the initial pending-payment status
// and appends the order to the collection.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.New().String()
	order.Status = models.OrderStatusPendingPayment
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders = append(r.orders, *order)
	return nil
}

// UpdateStatus overwrites the status of an order. There is no legality check
// on the transition, and an unknown id is a silent no-op.
func (r *MemoryOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// Cancel transitions a pending order to failed.
func (r *MemoryOrderRepository) Cancel(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			if r.orders[i].Status != models.OrderStatusPendingPayment {
				return models.ErrCannotCancelOrder
			}
			r.orders[i].Status = models.OrderStatusFailed
			r.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return models.NewNotFound(models.KindOrder, id)
}

// GetByID returns a copy of the order with the given ID.
func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, models.NewNotFound(models.KindOrder, id)
}

// GetByUser returns all orders belonging to the user, oldest first.
func (r *MemoryOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userOrders := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			userOrders = append(userOrders, order)
		}
	}
	return userOrders, nil
}
