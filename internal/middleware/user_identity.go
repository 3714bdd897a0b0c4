package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber locals key under which the caller's user identifier
// is stored.
const UserIDKey = "user_id"

// DefaultUserID is used when the caller does not identify itself.
const DefaultUserID = "guest"

// UserIdentity is a Fiber middleware that reads the caller-supplied user
// identifier from the X-User-ID header and stores it in the request locals.
// This is identification only, not authentication.
func UserIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			userID = DefaultUserID
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
