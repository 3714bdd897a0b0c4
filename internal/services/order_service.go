package services

import (
	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// OrderService handles queries and cancellation for existing orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetUserOrders retrieves all orders placed by the user, oldest first.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CancelOrder cancels an order that is still awaiting payment.
func (s *OrderService) CancelOrder(id string) error {
	return s.orderRepo.Cancel(id)
}
