package handlers

import (
	"net/http"
	"testing"

	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

func visitApp() *fiber.App {
	visitService := services.NewVisitService(services.NewGeoService("http://127.0.0.1:0"))
	handler := NewVisitHandler(visitService)

	app := fiber.New()
	app.Post("/api/visit", handler.Record)
	return app
}

func TestVisitRejectsNegativeDuration(t *testing.T) {
	app := visitApp()

	resp := postJSON(t, app, "/api/visit", `{"browser":"Mozilla/5.0","os":"Linux","device":"Desktop","duration":-3}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestVisitRejectsInvalidBody(t *testing.T) {
	app := visitApp()

	resp := postJSON(t, app, "/api/visit", `{broken`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
