package middleware

import (
	"strings"

	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

const (
	// ContextKeyUsername is the key for the authenticated username in context
	ContextKeyUsername = "username"
)

// AuthMiddleware creates a middleware that validates JWT tokens. It guards
// every dashboard data endpoint and the logout endpoint. The dashboard
// client redirects to /login when it receives a 401.
func AuthMiddleware(jwtService *services.JWTService) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Try to get token from Authorization header first
		authHeader := c.Get("Authorization")
		var token string

		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// If no token in header, try to get from cookie
		if token == "" {
			token = c.Cookies("token")
		}

		// If still no token, unauthorized
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Authentication required",
			})
		}

		// Validate token
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Invalid or expired token",
			})
		}

		// Store user info in context
		c.Locals(ContextKeyUsername, claims.Username)

		return c.Next()
	}
}

// GetUsername gets the authenticated username from context
func GetUsername(c fiber.Ctx) string {
	if username, ok := c.Locals(ContextKeyUsername).(string); ok {
		return username
	}
	return ""
}
