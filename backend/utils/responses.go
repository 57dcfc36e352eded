package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(data)
}

func SendOK(c *fiber.Ctx, data any) error {
	return SendJSON(c, http.StatusOK, data)
}

func SendCreated(c *fiber.Ctx, data any) error {
	return SendJSON(c, http.StatusCreated, data)
}

// SendDetail sends the {"detail": message} body used for errors that are
// not tied to a payload field.
func SendDetail(c *fiber.Ctx, statusCode int, message string) error {
	return SendJSON(c, statusCode, fiber.Map{"detail": message})
}

func SendNotFound(c *fiber.Ctx) error {
	return SendDetail(c, http.StatusNotFound, "Not found.")
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// GetIPAddress extracts the client IP address
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}

func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
