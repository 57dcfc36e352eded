package serializers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/pydis/site-api/siteapi/database/models"
)

type UserRepresentation struct {
	ID            int64   `json:"id"`
	AvatarHash    *string `json:"avatar_hash"`
	Name          string  `json:"name"`
	Discriminator int16   `json:"discriminator"`
	Roles         []int64 `json:"roles"`
	InGuild       bool    `json:"in_guild"`
}

type userPayload struct {
	ID            *int64  `json:"id" validate:"required,gte=0"`
	AvatarHash    *string `json:"avatar_hash" validate:"omitempty,max=100"`
	Name          *string `json:"name" validate:"required,notblank,max=32"`
	Discriminator *int    `json:"discriminator" validate:"required,gte=0,lte=9999"`
	Roles         []int64 `json:"roles"`
	InGuild       *bool   `json:"in_guild"`
}

// UserSerializer handles single and bulk user payloads. Every role id
// must refer to an existing role.
type UserSerializer struct {
	roles  KeyLookup
	writer UserWriter
}

func NewUserSerializer(roles KeyLookup, writer UserWriter) *UserSerializer {
	return &UserSerializer{roles: roles, writer: writer}
}

func (s *UserSerializer) Validate(ctx context.Context, data []byte) (*models.User, error) {
	var p userPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	for _, id := range p.Roles {
		if err := checkRef(ctx, verrs, "roles", id, s.roles); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	roles := p.Roles
	if roles == nil {
		roles = []int64{}
	}
	return &models.User{
		ID:            *p.ID,
		AvatarHash:    p.AvatarHash,
		Name:          *p.Name,
		Discriminator: int16(*p.Discriminator),
		Roles:         roles,
		InGuild:       deref(p.InGuild, true),
	}, nil
}

// ValidateMany validates a JSON array of users. Errors of the i-th item are
// reported under "[i]".
func (s *UserSerializer) ValidateMany(ctx context.Context, data []byte) ([]*models.User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, FieldError(NonFieldErrors, "Expected a list of items.")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, FieldError(NonFieldErrors, fmt.Sprintf("JSON parse error - %s", err.Error()))
	}

	verrs := NewValidationError()
	users := make([]*models.User, 0, len(items))
	seen := make(map[int64]int, len(items))
	for i, item := range items {
		u, err := s.Validate(ctx, item)
		if err != nil {
			var itemErrs *ValidationError
			if !errors.As(err, &itemErrs) {
				return nil, err
			}
			verrs.Nest(fmt.Sprintf("[%d]", i), itemErrs)
			continue
		}
		if prev, dup := seen[u.ID]; dup {
			verrs.Add(fmt.Sprintf("[%d].id", i), fmt.Sprintf("Duplicates the id of item %d.", prev))
			continue
		}
		seen[u.ID] = i
		users = append(users, u)
	}
	if !verrs.Empty() {
		return nil, verrs
	}
	return users, nil
}

func (s *UserSerializer) Represent(_ context.Context, m *models.User) (any, error) {
	return representUser(m), nil
}

func (s *UserSerializer) Create(ctx context.Context, m *models.User) error {
	return s.writer.Create(ctx, m)
}

func (s *UserSerializer) CreateMany(ctx context.Context, users []*models.User) error {
	return s.writer.CreateMany(ctx, users)
}

func representUser(m *models.User) *UserRepresentation {
	roles := slices.Clone(m.Roles)
	if roles == nil {
		roles = []int64{}
	}
	return &UserRepresentation{
		ID:            m.ID,
		AvatarHash:    m.AvatarHash,
		Name:          m.Name,
		Discriminator: m.Discriminator,
		Roles:         roles,
		InGuild:       m.InGuild,
	}
}
