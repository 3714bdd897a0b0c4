package models

import "time"

// OrderStatus is the lifecycle state of an order. PendingPayment is the
// only initial state; Paid and Failed are terminal.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusFailed         OrderStatus = "failed"
)

// Order represents a customer order produced by checkout. Once created it
// is immutable except for Status (and the bookkeeping UpdatedAt).
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	ProductIDs  []string    `json:"product_ids"`
	TotalAmount float64     `json:"total_amount"` // sum of quantity × unit price at checkout time
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
