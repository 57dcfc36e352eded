package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantState: "ok"},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantState: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", HealthCheck(&WebApp{
				DB:      pingerFunc(func(context.Context) error { return tt.pingErr }),
				Version: "1.0.0",
			}))

			status, body := doRequest(t, app, http.MethodGet, "/health", "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantState, body["status"])
			assert.Equal(t, "1.0.0", body["version"])
		})
	}
}
