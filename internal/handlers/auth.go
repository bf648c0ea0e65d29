package handlers

import (
	"context"
	"log"
	"time"

	"github.com/Jannescynatix/ipg/internal/middleware"
	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	authService *services.AuthService
	jwtService  *services.JWTService
}

func NewAuthHandler(authService *services.AuthService, jwtService *services.JWTService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
	}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin account. Unknown username and wrong
// password produce the identical response so the two cases cannot be told
// apart; each failure appends one audit record.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Username and password are required",
		})
	}

	ctx := context.Background()
	clientIP := middleware.GetRealIP(c)

	user, err := h.authService.GetUserByUsername(ctx, req.Username)
	if err != nil || !h.authService.CheckPassword(req.Password, user.PasswordHash) {
		if recErr := h.authService.RecordFailedLogin(ctx, clientIP, req.Username); recErr != nil {
			log.Printf("Failed to record failed login: %v", recErr)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid username or password",
		})
	}

	if recErr := h.authService.RecordSuccessfulLogin(ctx, clientIP, user.Username); recErr != nil {
		log.Printf("Failed to record successful login: %v", recErr)
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to generate token",
		})
	}

	h.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// Logout records the logout for the token's username. Audit insert failures
// are logged server-side only; the response stays 200 once the token was
// accepted by the guard.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	username := middleware.GetUsername(c)
	clientIP := middleware.GetRealIP(c)

	if err := h.authService.RecordSuccessfulLogout(context.Background(), clientIP, username); err != nil {
		log.Printf("Failed to record logout for %s: %v", username, err)
	}

	// Clear the auth cookie
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// setAuthCookie sets the authentication cookie
func (h *AuthHandler) setAuthCookie(c fiber.Ctx, token string) {
	expiry := h.jwtService.GetExpiry()
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(expiry),
		HTTPOnly: true,
		Secure:   false, // Set to true in production
		SameSite: "Lax",
	})
}
