package services

import (
	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// PaymentInitiator notifies an external payment rail that an order awaits
// payment. The call is fire-and-forget: implementations must not let a
// failed notification fail the checkout that triggered it.
type PaymentInitiator interface {
	InitiatePayment(order *models.Order)
}

// CheckoutService coordinates the checkout sequence: read the cart, price
// every line via the product repository, create a pending order and hand it
// to the payment initiator. It also applies payment callbacks to order state.
type CheckoutService struct {
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	payments    PaymentInitiator
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	payments PaymentInitiator,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		payments:    payments,
	}
}

// Checkout converts the user's cart into a pending order and triggers
// payment. Pricing is all-or-nothing: if any product in the cart cannot be
// resolved, no order is created. The cart snapshot and the order creation
// are two separate critical sections; a concurrent mutation of the same
// cart between them is possible and goes undetected. The cart itself is
// left untouched, so checking out an unmodified cart again re-prices and
// re-orders the same lines.
func (s *CheckoutService) Checkout(userID string) (*models.Order, error) {
	items, err := s.cartRepo.Snapshot(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, models.ErrEmptyCart
	}

	// Prices are read at this moment and never re-validated; the total is
	// accumulated in cart insertion order.
	var totalAmount float64
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		totalAmount += float64(item.Quantity) * product.Price
		productIDs = append(productIDs, item.ProductID)
	}

	// Quantities are not carried onto the order; only product identity is.
	order := &models.Order{
		UserID:      userID,
		ProductIDs:  productIDs,
		TotalAmount: totalAmount,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if s.payments != nil {
		s.payments.InitiatePayment(order)
	}

	return order, nil
}

// ApplyPaymentResult resolves an order's payment outcome. "success" marks
// the order paid; any other value, including unrecognized ones, marks it
// failed. A callback referencing an unknown order id is swallowed.
func (s *CheckoutService) ApplyPaymentResult(orderID, paymentStatus string) error {
	status := models.OrderStatusFailed
	if paymentStatus == "success" {
		status = models.OrderStatusPaid
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}
