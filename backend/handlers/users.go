package handlers

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pydis/site-api/backend/utils"
	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers"
)

// UserBatchSerializer is a user serializer that also handles lists.
type UserBatchSerializer interface {
	serializers.Serializer[models.User]
	ValidateMany(ctx context.Context, data []byte) ([]*models.User, error)
	CreateMany(ctx context.Context, users []*models.User) error
}

// CreateUsers accepts either a single user object or a list of users. A
// list is validated as a whole and written in one batch.
func CreateUsers(s UserBatchSerializer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		body := bytes.TrimSpace(c.Body())

		if len(body) == 0 || body[0] != '[' {
			user, err := s.Validate(ctx, body)
			if err != nil {
				return err
			}
			if err = s.Create(ctx, user); err != nil {
				return err
			}
			rep, err := s.Represent(ctx, user)
			if err != nil {
				return err
			}
			return utils.SendCreated(c, rep)
		}

		users, err := s.ValidateMany(ctx, body)
		if err != nil {
			return err
		}
		if err = s.CreateMany(ctx, users); err != nil {
			return err
		}

		slog.Info("Users created in bulk",
			slog.String("type", "http"),
			slog.Int("count", len(users)))

		out := make([]any, 0, len(users))
		for _, u := range users {
			rep, err := s.Represent(ctx, u)
			if err != nil {
				return err
			}
			out = append(out, rep)
		}
		return utils.SendCreated(c, out)
	}
}
