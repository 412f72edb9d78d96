package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prestigedrive/prestigedrive/internal/common/auth"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Enabled:   true,
		JWTSecret: "unit-test-secret",
		Issuer:    "prestigedrive",
		Audience:  "prestigedrive-api",
	}
}

func doAuthRequest(t *testing.T, cfg config.AuthConfig, authorization string) (*httptest.ResponseRecorder, bool, AuthInfo) {
	t.Helper()

	var (
		reached bool
		info    AuthInfo
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		info, _ = AuthFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminAuthMiddleware(cfg, nil)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/cars", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached, info
}

func TestAdminAuthMiddlewareAllowsAdminToken(t *testing.T) {
	cfg := testAuthConfig()
	token, _, err := auth.GenerateAccessToken(cfg, "admin-1", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	rec, reached, info := doAuthRequest(t, cfg, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !reached {
		t.Fatalf("expected next handler to run")
	}
	if info.Subject != "admin-1" {
		t.Fatalf("expected subject admin-1 in context, got %q", info.Subject)
	}
}

func TestAdminAuthMiddlewareRejectsMissingToken(t *testing.T) {
	rec, reached, _ := doAuthRequest(t, testAuthConfig(), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if reached {
		t.Fatalf("next handler must not run")
	}
}

func TestAdminAuthMiddlewareRejectsBadToken(t *testing.T) {
	rec, reached, _ := doAuthRequest(t, testAuthConfig(), "Bearer not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if reached {
		t.Fatalf("next handler must not run")
	}
}

func TestAdminAuthMiddlewareRejectsNonAdminRole(t *testing.T) {
	cfg := testAuthConfig()
	token, _, err := auth.GenerateAccessToken(cfg, "user-1", []string{"customer"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	rec, reached, _ := doAuthRequest(t, cfg, "Bearer "+token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if reached {
		t.Fatalf("next handler must not run")
	}
}

func TestAdminAuthMiddlewareDisabledPassesThrough(t *testing.T) {
	cfg := testAuthConfig()
	cfg.Enabled = false

	rec, reached, _ := doAuthRequest(t, cfg, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when auth disabled, got %d", rec.Code)
	}
	if !reached {
		t.Fatalf("expected next handler to run when auth disabled")
	}
}

func TestAdminAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	other := testAuthConfig()
	other.JWTSecret = "another-secret"
	token, _, err := auth.GenerateAccessToken(other, "admin-1", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	rec, reached, _ := doAuthRequest(t, testAuthConfig(), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong secret, got %d", rec.Code)
	}
	if reached {
		t.Fatalf("next handler must not run")
	}
}
