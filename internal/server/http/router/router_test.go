package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/server/http/handlers"
	facadetest "github.com/gigline/gigline/internal/test/facade"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := facadetest.MarketplaceFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{
		"username":          "alice",
		"email":             "alice@example.com",
		"password":          "pass",
		"repeated_password": "pass",
		"type":              "customer",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/registration", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for registration, got %d", resp.Code)
	}

	// The catalog and platform counters are public.
	for _, path := range []string{"/api/offers", "/api/base-info"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}

	// Orders require authentication.
	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for reviews, got %d", resp.Code)
	}
}

var _ handlers.MarketplaceFacade = (*facadetest.MarketplaceFacadeStub)(nil)
