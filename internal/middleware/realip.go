package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// GetRealIP extracts the real client IP from headers or connection.
// Priority: X-Real-IP > X-Forwarded-For > c.IP()
func GetRealIP(c fiber.Ctx) string {
	// Check X-Real-IP first (set by nginx)
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// Check X-Forwarded-For (may contain multiple IPs)
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		// Use the first IP in the list
		if i := strings.IndexByte(forwardedFor, ','); i >= 0 {
			return strings.TrimSpace(forwardedFor[:i])
		}
		return forwardedFor
	}

	// Fallback to connection IP
	return c.IP()
}
