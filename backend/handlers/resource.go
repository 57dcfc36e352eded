package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pydis/site-api/backend/utils"
	"github.com/pydis/site-api/siteapi/database/repositories"
	"github.com/pydis/site-api/siteapi/serializers"
)

// Operation selects which routes Register mounts for a resource.
type Operation uint8

const (
	OpList Operation = 1 << iota
	OpRetrieve
	OpCreate
	OpUpdate
	OpDelete

	OpAll      = OpList | OpRetrieve | OpCreate | OpUpdate | OpDelete
	OpReadOnly = OpList | OpRetrieve
)

// Resource exposes one record type over HTTP, converting payloads with
// Serializer and persisting through Store.
type Resource[M any, K comparable] struct {
	Name       string
	Serializer serializers.Serializer[M]
	Store      repositories.Store[M, K]
	ParseKey   func(string) (K, error)

	// Preserve copies fields a payload cannot carry, like the primary key,
	// from the stored record onto its validated replacement.
	Preserve func(existing, updated *M)
	// Fetch replaces Store.Get for single record reads.
	Fetch func(ctx context.Context, key K) (*M, error)
	// Base renders the stored record that updates are laid over when
	// Serializer's representation is not its own input shape.
	Base serializers.Serializer[M]
	// Filters maps query parameters to the columns they filter on.
	Filters map[string]Filter
}

// Filter binds a query parameter to a column. Parse rejects values the
// column cannot hold.
type Filter struct {
	Column string
	Parse  func(string) (any, error)
}

func StringFilter(column string) Filter {
	return Filter{Column: column, Parse: func(s string) (any, error) { return s, nil }}
}

func IntFilter(column string) Filter {
	return Filter{Column: column, Parse: func(s string) (any, error) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.New("Enter a whole number.")
		}
		return v, nil
	}}
}

func BoolFilter(column string) Filter {
	return Filter{Column: column, Parse: func(s string) (any, error) {
		switch strings.ToLower(s) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("Select a valid choice. %s is not one of the available choices.", s)
	}}
}

func Int64Key(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func StringKey(s string) (string, error) {
	return s, nil
}

// Register mounts the selected operations under path and path/:key.
func (r *Resource[M, K]) Register(router fiber.Router, path string, ops Operation) {
	item := path + "/:key"
	if ops&OpList != 0 {
		router.Get(path, r.List())
	}
	if ops&OpCreate != 0 {
		router.Post(path, r.Create())
	}
	if ops&OpRetrieve != 0 {
		router.Get(item, r.Retrieve())
	}
	if ops&OpUpdate != 0 {
		router.Put(item, r.Update(false))
		router.Patch(item, r.Update(true))
	}
	if ops&OpDelete != 0 {
		router.Delete(item, r.Delete())
	}
}

func (r *Resource[M, K]) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		var opts []repositories.QueryOption
		verrs := serializers.NewValidationError()
		for param, filter := range r.Filters {
			raw := c.Query(param)
			if raw == "" {
				continue
			}
			value, err := filter.Parse(raw)
			if err != nil {
				verrs.Add(param, err.Error())
				continue
			}
			opts = append(opts, repositories.WhereEq(filter.Column, value))
		}
		if err := verrs.Err(); err != nil {
			return err
		}

		records, err := r.Store.List(ctx, opts...)
		if err != nil {
			return err
		}

		out := make([]any, 0, len(records))
		for _, m := range records {
			rep, err := r.Serializer.Represent(ctx, m)
			if err != nil {
				return err
			}
			out = append(out, rep)
		}
		return utils.SendOK(c, out)
	}
}

func (r *Resource[M, K]) Retrieve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		key, err := r.ParseKey(c.Params("key"))
		if err != nil {
			return utils.SendNotFound(c)
		}
		m, err := r.get(ctx, key)
		if err != nil {
			return err
		}

		rep, err := r.Serializer.Represent(ctx, m)
		if err != nil {
			return err
		}
		return utils.SendOK(c, rep)
	}
}

func (r *Resource[M, K]) Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		m, err := r.Serializer.Validate(ctx, c.Body())
		if err != nil {
			return err
		}
		if err = r.Serializer.Create(ctx, m); err != nil {
			return err
		}

		slog.Info("Record created",
			slog.String("type", "http"),
			slog.String("resource", r.Name))

		rep, err := r.Serializer.Represent(ctx, m)
		if err != nil {
			return err
		}
		return utils.SendCreated(c, rep)
	}
}

// Update replaces a record. Both forms lay the body over the stored
// record's representation, so fields left out keep their stored values,
// and validate the result as a whole. A full update must also pass
// validation on its own body, which makes every required field mandatory.
func (r *Resource[M, K]) Update(partial bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		key, err := r.ParseKey(c.Params("key"))
		if err != nil {
			return utils.SendNotFound(c)
		}
		existing, err := r.get(ctx, key)
		if err != nil {
			return err
		}

		body := c.Body()
		if !partial {
			if _, err = r.Serializer.Validate(ctx, body); err != nil {
				return err
			}
		}
		if body, err = r.overlay(ctx, existing, body); err != nil {
			return err
		}

		updated, err := r.Serializer.Validate(ctx, body)
		if err != nil {
			return err
		}
		if r.Preserve != nil {
			r.Preserve(existing, updated)
		}
		if err = r.Store.Update(ctx, updated); err != nil {
			return err
		}

		rep, err := r.Serializer.Represent(ctx, updated)
		if err != nil {
			return err
		}
		return utils.SendOK(c, rep)
	}
}

func (r *Resource[M, K]) Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := r.ParseKey(c.Params("key"))
		if err != nil {
			return utils.SendNotFound(c)
		}
		if err = r.Store.Delete(c.UserContext(), key); err != nil {
			return err
		}
		return utils.SendNoContent(c)
	}
}

func (r *Resource[M, K]) get(ctx context.Context, key K) (*M, error) {
	if r.Fetch != nil {
		return r.Fetch(ctx, key)
	}
	return r.Store.Get(ctx, key)
}

// overlay returns the stored representation with the patch's top-level keys
// replaced. Bodies that are not objects pass through for Validate to reject.
func (r *Resource[M, K]) overlay(ctx context.Context, existing *M, patch []byte) ([]byte, error) {
	var changes map[string]json.RawMessage
	if err := json.Unmarshal(patch, &changes); err != nil {
		return patch, nil
	}

	base := r.Serializer
	if r.Base != nil {
		base = r.Base
	}
	rep, err := base.Represent(ctx, existing)
	if err != nil {
		return nil, err
	}
	current, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}

	var merged map[string]json.RawMessage
	if err = json.Unmarshal(current, &merged); err != nil {
		return patch, nil
	}
	maps.Copy(merged, changes)
	return json.Marshal(merged)
}
