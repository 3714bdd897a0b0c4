package services

import (
	"encoding/json"
	"log"

	"marketplace/internal/models"
)

// PaymentRequestPublisher sends a payment request to the external payment
// rail. Satisfied by pkg/rabbitmq.Client.
type PaymentRequestPublisher interface {
	PublishPaymentRequested(body []byte) error
}

// PaymentService implements PaymentInitiator by publishing a payment-request
// event. Its outcome is deliberately not propagated: checkout has already
// succeeded by the time the notification goes out, and the order stays
// pending until a callback resolves it.
type PaymentService struct {
	publisher PaymentRequestPublisher
}

// NewPaymentService creates a new PaymentService. A nil publisher is
// allowed; payment requests are then only logged.
func NewPaymentService(publisher PaymentRequestPublisher) *PaymentService {
	return &PaymentService{
		publisher: publisher,
	}
}

// paymentRequest is the message body sent to the payment rail.
type paymentRequest struct {
	OrderID     string  `json:"order_id"`
	UserID      string  `json:"user_id"`
	TotalAmount float64 `json:"total_amount"`
}

// InitiatePayment notifies the payment rail about a freshly created order.
// Failures are logged and swallowed.
func (s *PaymentService) InitiatePayment(order *models.Order) {
	log.Printf("Initiating payment for order %s (amount: %.2f)", order.ID, order.TotalAmount)

	if s.publisher == nil {
		log.Println("Payment publisher is not initialized. Skipping payment request publication.")
		return
	}

	body, err := json.Marshal(paymentRequest{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
	})
	if err != nil {
		log.Printf("Failed to marshal payment request for order %s: %v", order.ID, err)
		return
	}

	if err := s.publisher.PublishPaymentRequested(body); err != nil {
		log.Printf("Warning: Failed to publish payment request for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published payment request for order %s", order.ID)
	}
}
