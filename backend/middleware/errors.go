package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pydis/site-api/backend/utils"
	"github.com/pydis/site-api/siteapi/database/repositories"
	"github.com/pydis/site-api/siteapi/serializers"
)

// CustomErrorHandler renders handler errors as JSON. Validation failures
// become a 400 with the field map as body.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verrs    *serializers.ValidationError
		conflict *repositories.ConflictError
		notFound *repositories.NotFoundError
		fiberErr *fiber.Error
	)

	switch {
	case errors.As(err, &verrs):
		return utils.SendJSON(c, fiber.StatusBadRequest, verrs)
	case errors.As(err, &conflict):
		return utils.SendJSON(c, fiber.StatusBadRequest, fiber.Map{
			serializers.NonFieldErrors: []string{conflict.Error()},
		})
	case errors.As(err, &notFound):
		return utils.SendNotFound(c)
	case errors.As(err, &fiberErr):
		return utils.SendDetail(c, fiberErr.Code, fiberErr.Message)
	}

	slog.Error("Unhandled request error",
		slog.String("type", "http"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return utils.SendDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
}
