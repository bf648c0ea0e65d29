package services

import (
	"testing"
	"time"
)

func TestPasswordHashing(t *testing.T) {
	svc := NewAuthService(NewJWTService("test-secret", time.Hour))

	hash, err := svc.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "geheim123" {
		t.Fatal("hash equals plaintext password")
	}

	if !svc.CheckPassword("geheim123", hash) {
		t.Error("CheckPassword rejected the correct password")
	}
	if svc.CheckPassword("falsch", hash) {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestGenerateTokenBindsUsername(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(jwtService)

	token, err := jwtService.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want admin", claims.Username)
	}
}
