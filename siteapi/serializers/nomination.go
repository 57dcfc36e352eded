package serializers

import (
	"context"
	"time"

	"github.com/pydis/site-api/siteapi/database/models"
)

type NominationRepresentation struct {
	ID               int64      `json:"id"`
	Active           bool       `json:"active"`
	Actor            int64      `json:"actor"`
	Reason           string     `json:"reason"`
	User             int64      `json:"user"`
	InsertedAt       time.Time  `json:"inserted_at"`
	UnnominateReason string     `json:"unnominate_reason"`
	UnwatchedAt      *time.Time `json:"unwatched_at"`
}

type nominationPayload struct {
	Active           *bool   `json:"active"`
	Actor            *int64  `json:"actor" validate:"required"`
	Reason           *string `json:"reason"`
	User             *int64  `json:"user" validate:"required"`
	UnnominateReason *string `json:"unnominate_reason"`
	UnwatchedAt      *string `json:"unwatched_at"`
}

type NominationSerializer struct {
	users  UserGateway
	writer Writer[models.Nomination]
}

func NewNominationSerializer(users UserGateway, writer Writer[models.Nomination]) *NominationSerializer {
	return &NominationSerializer{users: users, writer: writer}
}

func (s *NominationSerializer) Validate(ctx context.Context, data []byte) (*models.Nomination, error) {
	var p nominationPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	unwatchedAt := parseTime(verrs, "unwatched_at", p.UnwatchedAt)
	if p.Actor != nil {
		if err := checkRef(ctx, verrs, "actor", *p.Actor, s.users); err != nil {
			return nil, err
		}
	}
	if p.User != nil {
		if err := checkRef(ctx, verrs, "user", *p.User, s.users); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	m := &models.Nomination{
		Active:           deref(p.Active, true),
		ActorID:          *p.Actor,
		Reason:           deref(p.Reason, ""),
		UserID:           *p.User,
		UnnominateReason: deref(p.UnnominateReason, ""),
		UnwatchedAt:      unwatchedAt,
	}
	if err := CheckNomination(m).Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// CheckNomination rejects an active nomination that carries an unnominate reason.
func CheckNomination(m *models.Nomination) *ValidationError {
	verrs := NewValidationError()
	if m.Active && m.UnnominateReason != "" {
		verrs.Add("unnominate_reason", "An active nomination can't have an unnominate reason")
	}
	return verrs
}

func (s *NominationSerializer) Represent(_ context.Context, m *models.Nomination) (any, error) {
	return &NominationRepresentation{
		ID:               m.ID,
		Active:           m.Active,
		Actor:            m.ActorID,
		Reason:           m.Reason,
		User:             m.UserID,
		InsertedAt:       m.InsertedAt,
		UnnominateReason: m.UnnominateReason,
		UnwatchedAt:      m.UnwatchedAt,
	}, nil
}

func (s *NominationSerializer) Create(ctx context.Context, m *models.Nomination) error {
	return s.writer.Create(ctx, m)
}
