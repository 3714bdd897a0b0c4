package services

import (
	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// CartService handles business logic related to shopping carts.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddItem adds quantity of a product to the user's cart, merging with an
// existing line for the same product. Quantities below one are rejected;
// zero-quantity lines are never stored.
func (s *CartService) AddItem(userID, productID string, quantity int) error {
	if quantity < 1 {
		return &models.ValidationError{Reason: "quantity must be at least 1"}
	}
	return s.cartRepo.AddItem(userID, models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateItemQuantity overwrites the quantity of an existing cart line.
// Updating a line that does not exist is a silent no-op, not an error.
func (s *CartService) UpdateItemQuantity(userID, productID string, quantity int) error {
	if quantity < 1 {
		return &models.ValidationError{Reason: "quantity must be at least 1"}
	}
	return s.cartRepo.UpdateItemQuantity(userID, productID, quantity)
}

// RemoveItem removes a product's line from the user's cart; removing an
// absent line is a no-op.
func (s *CartService) RemoveItem(userID, productID string) error {
	return s.cartRepo.RemoveItem(userID, productID)
}

// GetCart returns a point-in-time copy of the user's cart lines.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.Snapshot(userID)
}
