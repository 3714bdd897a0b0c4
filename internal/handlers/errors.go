package handlers

import (
	"errors"

	"marketplace/internal/middleware"
	"marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a domain error onto an HTTP status and renders the
// shared error body. Validation failures become 400, missing resources 404;
// everything else, including lock contention, is an internal error.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError

	var notFound *models.NotFoundError
	var validation *models.ValidationError
	switch {
	case errors.As(err, &notFound):
		status = fiber.StatusNotFound
	case errors.As(err, &validation):
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// currentUser returns the caller's user identifier stored by the
// UserIdentity middleware.
func currentUser(c *fiber.Ctx) string {
	if userID, ok := c.Locals(middleware.UserIDKey).(string); ok && userID != "" {
		return userID
	}
	return middleware.DefaultUserID
}
