package handlers

import (
	"context"

	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	visitService *services.VisitService
}

func NewDashboardHandler(visitService *services.VisitService) *DashboardHandler {
	return &DashboardHandler{
		visitService: visitService,
	}
}

// Stats returns the aggregated dashboard summary
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	summary, err := h.visitService.Stats(context.Background())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch stats",
		})
	}

	return c.JSON(summary)
}

// FailedLogins returns failed login attempts newest first
func (h *DashboardHandler) FailedLogins(c fiber.Ctx) error {
	all := c.Query("all") == "true"

	events, err := h.visitService.ListFailedLogins(context.Background(), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch failed logins",
		})
	}

	return c.JSON(events)
}

// SuccessfulLogins returns successful logins newest first
func (h *DashboardHandler) SuccessfulLogins(c fiber.Ctx) error {
	all := c.Query("all") == "true"

	events, err := h.visitService.ListSuccessfulLogins(context.Background(), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch successful logins",
		})
	}

	return c.JSON(events)
}

// SuccessfulLogouts returns logouts newest first
func (h *DashboardHandler) SuccessfulLogouts(c fiber.Ctx) error {
	all := c.Query("all") == "true"

	events, err := h.visitService.ListSuccessfulLogouts(context.Background(), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch logouts",
		})
	}

	return c.JSON(events)
}

// ClearData removes every tracked record. Irreversible; the dashboard asks
// for confirmation before calling this.
func (h *DashboardHandler) ClearData(c fiber.Ctx) error {
	if err := h.visitService.ClearAll(context.Background()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to clear data",
		})
	}

	return c.JSON(fiber.Map{
		"message": "All data cleared",
	})
}
