package auth

import (
	"testing"
	"time"

	"github.com/prestigedrive/prestigedrive/internal/common/config"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	cfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: "test-secret",
		Issuer:    "prestigedrive",
		Audience:  "prestigedrive",
	}

	token, exp, err := GenerateAccessToken(cfg, "admin-1", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if exp.Before(time.Now()) {
		t.Fatalf("expected exp in future")
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Fatalf("subject mismatch: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("roles mismatch: %#v", claims.Roles)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret-a", Issuer: "prestigedrive"}
	token, _, err := GenerateAccessToken(cfg, "admin-1", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := config.AuthConfig{JWTSecret: "secret-b", Issuer: "prestigedrive"}
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestGenerateAccessTokenRequiresSecret(t *testing.T) {
	if _, _, err := GenerateAccessToken(config.AuthConfig{}, "admin-1", nil, time.Hour); err == nil {
		t.Fatalf("expected error with empty jwt_secret")
	}
}
