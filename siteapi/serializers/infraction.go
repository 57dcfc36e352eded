package serializers

import (
	"context"
	"fmt"
	"time"

	"github.com/pydis/site-api/siteapi/database/models"
)

type InfractionRepresentation struct {
	ID         int64                 `json:"id"`
	InsertedAt time.Time             `json:"inserted_at"`
	ExpiresAt  *time.Time            `json:"expires_at"`
	Active     bool                  `json:"active"`
	User       int64                 `json:"user"`
	Actor      int64                 `json:"actor"`
	Type       models.InfractionType `json:"type"`
	Reason     *string               `json:"reason"`
	Hidden     bool                  `json:"hidden"`
}

type infractionPayload struct {
	InsertedAt *string `json:"inserted_at"`
	ExpiresAt  *string `json:"expires_at"`
	Active     *bool   `json:"active" validate:"required"`
	User       *int64  `json:"user" validate:"required"`
	Actor      *int64  `json:"actor" validate:"required"`
	Type       *string `json:"type" validate:"required,oneof=note warning watch mute kick ban superstar voice_ban"`
	Reason     *string `json:"reason"`
	Hidden     *bool   `json:"hidden"`
}

type InfractionSerializer struct {
	users  UserGateway
	writer Writer[models.Infraction]
	now    func() time.Time
}

func NewInfractionSerializer(users UserGateway, writer Writer[models.Infraction]) *InfractionSerializer {
	return &InfractionSerializer{users: users, writer: writer, now: time.Now}
}

func (s *InfractionSerializer) Validate(ctx context.Context, data []byte) (*models.Infraction, error) {
	var p infractionPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	insertedAt := parseTime(verrs, "inserted_at", p.InsertedAt)
	expiresAt := parseTime(verrs, "expires_at", p.ExpiresAt)
	if p.User != nil {
		if err := checkRef(ctx, verrs, "user", *p.User, s.users); err != nil {
			return nil, err
		}
	}
	if p.Actor != nil {
		if err := checkRef(ctx, verrs, "actor", *p.Actor, s.users); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	m := &models.Infraction{
		InsertedAt: deref(insertedAt, s.now()),
		ExpiresAt:  expiresAt,
		Active:     *p.Active,
		UserID:     *p.User,
		ActorID:    *p.Actor,
		Type:       models.InfractionType(*p.Type),
		Reason:     p.Reason,
		Hidden:     deref(p.Hidden, false),
	}
	if err := CheckInfraction(m).Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// CheckInfraction applies the rules that depend on the infraction type.
func CheckInfraction(m *models.Infraction) *ValidationError {
	verrs := NewValidationError()
	if m.ExpiresAt != nil && !m.Type.CanExpire() {
		verrs.Add("expires_at", fmt.Sprintf("%s infractions cannot expire.", m.Type))
	}
	if m.Hidden && !m.Type.CanBeHidden() {
		verrs.Add("hidden", fmt.Sprintf("%s infractions cannot be hidden.", m.Type))
	}
	return verrs
}

func (s *InfractionSerializer) Represent(_ context.Context, m *models.Infraction) (any, error) {
	return s.represent(m), nil
}

func (s *InfractionSerializer) represent(m *models.Infraction) *InfractionRepresentation {
	return &InfractionRepresentation{
		ID:         m.ID,
		InsertedAt: m.InsertedAt,
		ExpiresAt:  m.ExpiresAt,
		Active:     m.Active,
		User:       m.UserID,
		Actor:      m.ActorID,
		Type:       m.Type,
		Reason:     m.Reason,
		Hidden:     m.Hidden,
	}
}

func (s *InfractionSerializer) Create(ctx context.Context, m *models.Infraction) error {
	return s.writer.Create(ctx, m)
}
