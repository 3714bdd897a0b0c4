package handlers

import (
	"fmt"
	"log"

	"marketplace/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
}

// AddItemRequest represents the request body for adding a cart line.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateItemRequest represents the request body for overwriting a cart
// line's quantity.
type UpdateItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// HandleGetCart returns the current contents of the caller's cart. An empty
// cart yields an empty array, not an error.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := currentUser(c)
	items, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return errorResponse(c, "Could not retrieve cart", err)
	}
	return c.JSON(items)
}

// HandleAddItem adds a product to the caller's cart, merging quantities when
// the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	userID := currentUser(c)
	if err := h.service.AddItem(userID, req.ProductID, quantity); err != nil {
		log.Printf("Error adding item %s to cart for user %s: %v", req.ProductID, userID, err)
		return errorResponse(c, "Could not add item to cart", err)
	}

	return c.JSON(fiber.Map{
		"message": "Item added to cart",
	})
}

// HandleUpdateItem overwrites the quantity of an existing cart line. If the
// line does not exist, nothing happens and the request still succeeds.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	userID := currentUser(c)
	if err := h.service.UpdateItemQuantity(userID, req.ProductID, req.Quantity); err != nil {
		log.Printf("Error updating item %s in cart for user %s: %v", req.ProductID, userID, err)
		return errorResponse(c, "Could not update cart item", err)
	}

	return c.JSON(fiber.Map{
		"message": "Item updated in cart",
	})
}

// HandleRemoveItem removes a product's line from the caller's cart. Removing
// an absent line is a no-op and still succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	userID := currentUser(c)
	if err := h.service.RemoveItem(userID, productID); err != nil {
		log.Printf("Error removing item %s from cart for user %s: %v", productID, userID, err)
		return errorResponse(c, "Could not remove item from cart", err)
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// validationErrorResponse renders validator.ValidationErrors as a 400 with
// per-field messages.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
