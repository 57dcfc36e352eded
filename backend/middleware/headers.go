package middleware

import "github.com/gofiber/fiber/v2"

// SecurityHeaders adds security headers to responses. The API only serves
// JSON, so nothing may be framed or loaded from it.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "no-referrer")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		return c.Next()
	}
}
