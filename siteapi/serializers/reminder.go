package serializers

import (
	"context"
	"time"

	"github.com/pydis/site-api/siteapi/database/models"
)

type ReminderRepresentation struct {
	Active     bool      `json:"active"`
	Author     int64     `json:"author"`
	ChannelID  int64     `json:"channel_id"`
	Content    string    `json:"content"`
	Expiration time.Time `json:"expiration"`
	ID         int64     `json:"id"`
}

type reminderPayload struct {
	Active     *bool   `json:"active"`
	Author     *int64  `json:"author" validate:"required"`
	ChannelID  *int64  `json:"channel_id" validate:"required,gte=0"`
	Content    *string `json:"content" validate:"required,notblank,max=1500"`
	Expiration *string `json:"expiration" validate:"required"`
}

type ReminderSerializer struct {
	users  KeyLookup
	writer Writer[models.Reminder]
}

func NewReminderSerializer(users KeyLookup, writer Writer[models.Reminder]) *ReminderSerializer {
	return &ReminderSerializer{users: users, writer: writer}
}

func (s *ReminderSerializer) Validate(ctx context.Context, data []byte) (*models.Reminder, error) {
	var p reminderPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	expiration := parseTime(verrs, "expiration", p.Expiration)
	if p.Author != nil {
		if err := checkRef(ctx, verrs, "author", *p.Author, s.users); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.Reminder{
		Active:     deref(p.Active, true),
		AuthorID:   *p.Author,
		ChannelID:  *p.ChannelID,
		Content:    *p.Content,
		Expiration: *expiration,
	}, nil
}

func (s *ReminderSerializer) Represent(_ context.Context, m *models.Reminder) (any, error) {
	return &ReminderRepresentation{
		Active:     m.Active,
		Author:     m.AuthorID,
		ChannelID:  m.ChannelID,
		Content:    m.Content,
		Expiration: m.Expiration,
		ID:         m.ID,
	}, nil
}

func (s *ReminderSerializer) Create(ctx context.Context, m *models.Reminder) error {
	return s.writer.Create(ctx, m)
}
