package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Jannescynatix/ipg/internal/rabbitmq"
	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"
)

type GiveawayHandler struct {
	giveawayService *services.GiveawayService
}

func NewGiveawayHandler(giveawayService *services.GiveawayService) *GiveawayHandler {
	return &GiveawayHandler{
		giveawayService: giveawayService,
	}
}

// SignupRequest represents the public giveaway form payload
type SignupRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Signup handles a public giveaway entry. Only presence is validated
// server-side; the form does format validation before submit.
func (h *GiveawayHandler) Signup(c fiber.Ctx) error {
	var req SignupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" || req.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Name, email, and address are required",
		})
	}

	participant, err := h.giveawayService.Create(context.Background(), req.Name, req.Email, req.Address)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to save entry",
		})
	}

	// Notify the admin asynchronously; signup never fails on this.
	if err := rabbitmq.PublishSignupNotification(participant.UUID.String()); err != nil {
		log.Printf("Failed to publish signup notification: %v", err)
	}

	return c.JSON(fiber.Map{
		"message": "Thank you for entering the giveaway!",
	})
}

// List returns entries newest first; ?all=true removes the page-size cap
func (h *GiveawayHandler) List(c fiber.Ctx) error {
	all := c.Query("all") == "true"

	participants, err := h.giveawayService.List(context.Background(), all)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch participants",
		})
	}

	return c.JSON(participants)
}

// ExportExcel downloads all entries as an .xlsx workbook
func (h *GiveawayHandler) ExportExcel(c fiber.Ctx) error {
	participants, err := h.giveawayService.List(context.Background(), true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to fetch participants",
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Participants"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Address", "Signed Up"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, p := range participants {
		values := []interface{}{p.Name, p.Email, p.Address, p.CreatedAt.Format(time.RFC3339)}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to generate export",
		})
	}

	filename := fmt.Sprintf("giveaway-participants-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
