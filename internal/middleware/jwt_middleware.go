package middleware

import (
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		// Continue to the next handler
		return c.Next()
	}
}

// RequirePermission is a Fiber middleware that gates a route behind a single
// permission. It must run after AuthRequired so the role claim is available.
// All admin-only routes go through this one check.
func RequirePermission(perm models.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !models.Authorize(models.Role(role), perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You do not have permission to perform this action",
			})
		}
		return c.Next()
	}
}

// UserID returns the caller's user id stored by AuthRequired.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// UserRole returns the caller's role stored by AuthRequired.
func UserRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("role").(string)
	return models.Role(role)
}
