package handlers

import (
	"context"

	"github.com/Jannescynatix/ipg/internal/middleware"
	"github.com/Jannescynatix/ipg/internal/models"
	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

type VisitHandler struct {
	visitService *services.VisitService
}

func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{
		visitService: visitService,
	}
}

// VisitPayload is the page-load beacon. The browser field carries the full
// user agent string; duration is optional seconds on the page.
type VisitPayload struct {
	Browser  string   `json:"browser"`
	OS       string   `json:"os"`
	Device   string   `json:"device"`
	Duration *float64 `json:"duration,omitempty"`
}

// Record handles the anonymous visit beacon sent on every page load
func (h *VisitHandler) Record(c fiber.Ctx) error {
	var payload VisitPayload
	if err := c.Bind().JSON(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	if payload.Duration != nil && *payload.Duration < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Duration must not be negative",
		})
	}

	// Trust the client's device value only when it is a known type;
	// otherwise classify server-side from the user agent.
	device := payload.Device
	if !models.ValidDevice(device) {
		ua := payload.Browser
		if ua == "" {
			ua = c.Get("User-Agent")
		}
		device = models.DeviceFromUserAgent(ua)
	}

	visit := &models.Visit{
		IPAddress: middleware.GetRealIP(c),
		Browser:   payload.Browser,
		OS:        payload.OS,
		Device:    device,
		Duration:  payload.Duration,
	}

	if err := h.visitService.Record(context.Background(), visit); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to save visit",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Visit recorded",
	})
}

// List returns visits newest first; ?all=true removes the page-size cap
func (h *VisitHandler) List(c fiber.Ctx) error {
	all := c.Query("all") == "true"

	visits, err := h.visitService.ListVisits(context.Background(), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch visits",
		})
	}

	return c.JSON(visits)
}
