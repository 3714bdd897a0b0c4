package handlers

import (
	"log"

	"marketplace/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkout and the payment
// callback.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	router.Post("/payment/callback", h.HandlePaymentCallback)
}

// PaymentCallbackRequest represents the payment rail's out-of-band
// notification resolving an order's payment outcome.
type PaymentCallbackRequest struct {
	OrderID       string `json:"order_id" validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// HandleCheckout converts the caller's cart into a pending order. The
// response acknowledges the order; payment is resolved later by callback.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	userID := currentUser(c)
	order, err := h.service.Checkout(userID)
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", userID, err)
		return errorResponse(c, "Checkout failed", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Checkout started, awaiting payment",
		"order":   order,
	})
}

// HandlePaymentCallback applies a payment outcome to an order. A callback
// for an unknown order id still succeeds: the payment rail retrying a stale
// notification must not receive an error.
func (h *CheckoutHandler) HandlePaymentCallback(c *fiber.Ctx) error {
	var req PaymentCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment callback body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.ApplyPaymentResult(req.OrderID, req.PaymentStatus); err != nil {
		log.Printf("Error applying payment result for order %s: %v", req.OrderID, err)
		return errorResponse(c, "Could not update payment status", err)
	}

	return c.JSON(fiber.Map{
		"message": "Payment status updated",
	})
}
