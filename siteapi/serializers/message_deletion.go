package serializers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pydis/site-api/siteapi/database/models"
)

type DeletedMessageRepresentation struct {
	ID              int64             `json:"id"`
	Author          int64             `json:"author"`
	ChannelID       int64             `json:"channel_id"`
	Content         string            `json:"content"`
	Embeds          []json.RawMessage `json:"embeds"`
	DeletionContext int64             `json:"deletion_context"`
}

type deletedMessagePayload struct {
	ID              *int64            `json:"id" validate:"required,gte=0"`
	Author          *int64            `json:"author" validate:"required"`
	ChannelID       *int64            `json:"channel_id" validate:"required,gte=0"`
	Content         *string           `json:"content" validate:"required,max=4000"`
	Embeds          []json.RawMessage `json:"embeds" validate:"required"`
	DeletionContext *int64            `json:"deletion_context"`
}

// DeletedMessageSerializer handles messages posted on their own. The
// deletion_context field is optional while validating because nested
// creation fills it in, but a standalone message can only be written once
// it points at an existing context.
type DeletedMessageSerializer struct {
	users    KeyLookup
	contexts KeyLookup
	writer   Writer[models.DeletedMessage]
}

func NewDeletedMessageSerializer(users, contexts KeyLookup, writer Writer[models.DeletedMessage]) *DeletedMessageSerializer {
	return &DeletedMessageSerializer{users: users, contexts: contexts, writer: writer}
}

func (s *DeletedMessageSerializer) Validate(ctx context.Context, data []byte) (*models.DeletedMessage, error) {
	var p deletedMessagePayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	if err := s.checkMessage(ctx, verrs, "", &p); err != nil {
		return nil, err
	}
	if p.DeletionContext != nil {
		if err := checkRef(ctx, verrs, "deletion_context", *p.DeletionContext, s.contexts); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	m := deletedMessageModel(&p)
	m.DeletionContextID = deref(p.DeletionContext, 0)
	return m, nil
}

// checkMessage runs the embed and author checks shared with nested creation.
// prefix is prepended to every field key.
func (s *DeletedMessageSerializer) checkMessage(ctx context.Context, verrs *ValidationError, prefix string, p *deletedMessagePayload) error {
	key := func(field string) string {
		if prefix == "" {
			return field
		}
		return prefix + "." + field
	}

	for i, embed := range p.Embeds {
		for _, msg := range validateEmbed(embed) {
			verrs.Add(fmt.Sprintf("%s[%d]", key("embeds"), i), msg)
		}
	}
	if p.Author != nil {
		return checkRef(ctx, verrs, key("author"), *p.Author, s.users)
	}
	return nil
}

func deletedMessageModel(p *deletedMessagePayload) *models.DeletedMessage {
	embeds := p.Embeds
	if embeds == nil {
		embeds = []json.RawMessage{}
	}
	return &models.DeletedMessage{
		ID:          *p.ID,
		AuthorID:    *p.Author,
		ChannelID:   *p.ChannelID,
		Content:     *p.Content,
		Embeds:      embeds,
		Attachments: []string{},
	}
}

func (s *DeletedMessageSerializer) Represent(_ context.Context, m *models.DeletedMessage) (any, error) {
	return representDeletedMessage(m), nil
}

func (s *DeletedMessageSerializer) Create(ctx context.Context, m *models.DeletedMessage) error {
	if m.DeletionContextID == 0 {
		return FieldError("deletion_context", msgRequired)
	}
	return s.writer.Create(ctx, m)
}

func representDeletedMessage(m *models.DeletedMessage) *DeletedMessageRepresentation {
	embeds := m.Embeds
	if embeds == nil {
		embeds = []json.RawMessage{}
	}
	return &DeletedMessageRepresentation{
		ID:              m.ID,
		Author:          m.AuthorID,
		ChannelID:       m.ChannelID,
		Content:         m.Content,
		Embeds:          embeds,
		DeletionContext: m.DeletionContextID,
	}
}

type MessageDeletionContextRepresentation struct {
	Actor           *int64                          `json:"actor"`
	Creation        time.Time                       `json:"creation"`
	ID              int64                           `json:"id"`
	DeletedMessages []*DeletedMessageRepresentation `json:"deletedmessage_set"`
}

type messageDeletionContextPayload struct {
	Actor           *int64                  `json:"actor"`
	Creation        *string                 `json:"creation"`
	DeletedMessages []deletedMessagePayload `json:"deletedmessage_set" validate:"required,dive"`
}

// MessageDeletionContextSerializer accepts a context together with the
// messages deleted in it and persists both in one transaction.
type MessageDeletionContextSerializer struct {
	users    KeyLookup
	messages *DeletedMessageSerializer
	writer   DeletionContextWriter
	now      func() time.Time
}

func NewMessageDeletionContextSerializer(users KeyLookup, messages *DeletedMessageSerializer, writer DeletionContextWriter) *MessageDeletionContextSerializer {
	return &MessageDeletionContextSerializer{users: users, messages: messages, writer: writer, now: time.Now}
}

func (s *MessageDeletionContextSerializer) Validate(ctx context.Context, data []byte) (*models.MessageDeletionContext, error) {
	var p messageDeletionContextPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	creation := parseTime(verrs, "creation", p.Creation)
	if p.Actor != nil {
		if err := checkRef(ctx, verrs, "actor", *p.Actor, s.users); err != nil {
			return nil, err
		}
	}
	for i := range p.DeletedMessages {
		prefix := fmt.Sprintf("deletedmessage_set[%d]", i)
		if err := s.messages.checkMessage(ctx, verrs, prefix, &p.DeletedMessages[i]); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	dc := &models.MessageDeletionContext{
		ActorID:         p.Actor,
		Creation:        deref(creation, s.now()),
		DeletedMessages: make([]*models.DeletedMessage, 0, len(p.DeletedMessages)),
	}
	for i := range p.DeletedMessages {
		dc.DeletedMessages = append(dc.DeletedMessages, deletedMessageModel(&p.DeletedMessages[i]))
	}
	return dc, nil
}

func (s *MessageDeletionContextSerializer) Represent(_ context.Context, m *models.MessageDeletionContext) (any, error) {
	msgs := make([]*DeletedMessageRepresentation, 0, len(m.DeletedMessages))
	for _, dm := range m.DeletedMessages {
		msgs = append(msgs, representDeletedMessage(dm))
	}
	return &MessageDeletionContextRepresentation{
		Actor:           m.ActorID,
		Creation:        m.Creation,
		ID:              m.ID,
		DeletedMessages: msgs,
	}, nil
}

// Create writes the context first and then each message pointing at it.
func (s *MessageDeletionContextSerializer) Create(ctx context.Context, m *models.MessageDeletionContext) error {
	return s.writer.CreateWithMessages(ctx, m, m.DeletedMessages)
}
