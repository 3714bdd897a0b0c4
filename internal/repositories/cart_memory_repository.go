package repositories

import (
	"sync"

	"marketplace/internal/models"
)

// MemoryCartRepository is an in-memory implementation of CartRepository.
// One mutex guards the whole map; operations are short (map and slice
// mutation only), so the coarse lock is acceptable for a single process.
type MemoryCartRepository struct {
	carts map[string][]models.CartItem
	mu    sync.RWMutex
}

// NewMemoryCartRepository creates a new instance of MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string][]models.CartItem),
	}
}

// AddItem inserts a line for item.ProductID, or increments the existing
// line's quantity when the product is already in the cart.
func (r *MemoryCartRepository) AddItem(userID string, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userID]
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			cart[i].Quantity += item.Quantity
			return nil
		}
	}
	r.carts[userID] = append(cart, item)
	return nil
}

// UpdateItemQuantity overwrites the quantity of an existing line. When the
// user has no cart or no line for productID this is a silent no-op: absence
// of the target line is not reported as an error, and no line is created.
func (r *MemoryCartRepository) UpdateItemQuantity(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userID]
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// RemoveItem deletes the line for productID if present; no-op if absent.
func (r *MemoryCartRepository) RemoveItem(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userID]
	for i := range cart {
		if cart[i].ProductID == productID {
			r.carts[userID] = append(cart[:i], cart[i+1:]...)
			return nil
		}
	}
	return nil
}

// Snapshot returns a copy of the user's cart lines in insertion order, or an
// empty slice when the user has no cart yet.
func (r *MemoryCartRepository) Snapshot(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := r.carts[userID]
	snapshot := make([]models.CartItem, len(cart))
	copy(snapshot, cart)
	return snapshot, nil
}
