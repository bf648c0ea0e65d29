package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
)

func signupApp() *fiber.App {
	giveawayService := services.NewGiveawayService(services.NewCryptoService("test-secret"))
	handler := NewGiveawayHandler(giveawayService)

	app := fiber.New()
	app.Post("/api/giveaway-signup", handler.Signup)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestSignupRejectsMissingFields(t *testing.T) {
	app := signupApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty name", body: `{"name":"","email":"a@b.de","address":"Musterstraße 1"}`},
		{name: "empty email", body: `{"name":"Max","email":"","address":"Musterstraße 1"}`},
		{name: "empty address", body: `{"name":"Max","email":"a@b.de","address":""}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/giveaway-signup", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	app := signupApp()

	resp := postJSON(t, app, "/api/giveaway-signup", `not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
