package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skobelin/paytrack/internal/bus"
	"github.com/skobelin/paytrack/internal/config"
	"github.com/skobelin/paytrack/internal/domain/model"
	"github.com/skobelin/paytrack/internal/server/http/handlers"
	testhelpers "github.com/skobelin/paytrack/internal/test"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.CommerceFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(token string) (*model.Identity, error) {
				if token == "admin-token" {
					return &model.Identity{UserID: 1, Role: model.RoleAdmin}, nil
				}
				return &model.Identity{UserID: 2, Role: model.RoleCustomer}, nil
			},
		},
	}
	cfg := &config.Config{CORSOrigin: "http://localhost:3000", StreamBuffer: 4}
	return Setup(facade, bus.NewBroadcaster(cfg.StreamBuffer, logger), healthCheckerStub{}, cfg, logger)
}

func TestNoRouteReturnsJSON(t *testing.T) {
	engine := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct == "" {
		t.Fatal("expected JSON error body")
	}
}

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{CORSOrigin: "http://localhost:3000", StreamBuffer: 4}
	engine := Setup(testhelpers.CommerceFacadeStub{}, bus.NewBroadcaster(cfg.StreamBuffer, logger),
		healthCheckerStub{err: context.DeadlineExceeded}, cfg, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when storage is down, got %d", resp.Code)
	}
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "pw123456",
	})
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}
}

func TestSetupAuthGates(t *testing.T) {
	engine := newTestRouter()

	for _, path := range []string{"/api/orders", "/api/transactions"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without token, got %d", path, resp.Code)
		}
	}

	// Transaction listing is admin-only.
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer customer-token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}

var _ handlers.CommerceFacade = (*testhelpers.CommerceFacadeStub)(nil)
