package serializers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pydis/site-api/siteapi/database/models"
)

// ExpandedInfractionRepresentation is an infraction with user and actor
// rendered as full user records.
type ExpandedInfractionRepresentation struct {
	ID         int64                 `json:"id"`
	InsertedAt time.Time             `json:"inserted_at"`
	ExpiresAt  *time.Time            `json:"expires_at"`
	Active     bool                  `json:"active"`
	User       *UserRepresentation   `json:"user"`
	Actor      *UserRepresentation   `json:"actor"`
	Type       models.InfractionType `json:"type"`
	Reason     *string               `json:"reason"`
	Hidden     bool                  `json:"hidden"`
}

// ExpandedInfractionSerializer wraps InfractionSerializer. Input handling is
// unchanged; only the representation differs.
type ExpandedInfractionSerializer struct {
	base  *InfractionSerializer
	users UserGateway
}

func NewExpandedInfractionSerializer(base *InfractionSerializer, users UserGateway) *ExpandedInfractionSerializer {
	return &ExpandedInfractionSerializer{base: base, users: users}
}

func (s *ExpandedInfractionSerializer) Validate(ctx context.Context, data []byte) (*models.Infraction, error) {
	return s.base.Validate(ctx, data)
}

func (s *ExpandedInfractionSerializer) Create(ctx context.Context, m *models.Infraction) error {
	return s.base.Create(ctx, m)
}

func (s *ExpandedInfractionSerializer) Represent(ctx context.Context, m *models.Infraction) (any, error) {
	rep := s.base.represent(m)

	var user, actor *models.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.Get(gctx, rep.User)
		if err != nil {
			return fmt.Errorf("failed to load user %d: %w", rep.User, err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		u, err := s.users.Get(gctx, rep.Actor)
		if err != nil {
			return fmt.Errorf("failed to load actor %d: %w", rep.Actor, err)
		}
		actor = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ExpandedInfractionRepresentation{
		ID:         rep.ID,
		InsertedAt: rep.InsertedAt,
		ExpiresAt:  rep.ExpiresAt,
		Active:     rep.Active,
		User:       representUser(user),
		Actor:      representUser(actor),
		Type:       rep.Type,
		Reason:     rep.Reason,
		Hidden:     rep.Hidden,
	}, nil
}
