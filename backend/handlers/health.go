package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pydis/site-api/backend/utils"
)

const healthCheckTimeout = 5 * time.Second

// HealthCheck reports whether the database answers a ping.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		body := fiber.Map{
			"version": webApp.Version,
			"commit":  webApp.Commit,
		}

		if err := webApp.DB.Ping(ctx); err != nil {
			slog.Error("Health check failed",
				slog.String("type", "http"),
				slog.Any("error", err))
			body["status"] = "unavailable"
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, body)
		}

		body["status"] = "ok"
		return utils.SendOK(c, body)
	}
}
