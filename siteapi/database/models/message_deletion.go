package models

import (
	"encoding/json"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

// MessageDeletionContext groups the messages removed by a single action,
// for example a purge by a moderator or an automatic filter hit.
type MessageDeletionContext struct {
	bun.BaseModel `bun:"table:api_messagedeletioncontext,alias:mdc"`

	ID       int64     `bun:"id,pk,autoincrement"`
	ActorID  *int64    `bun:"actor_id"`
	Creation time.Time `bun:"creation,notnull"`

	DeletedMessages []*DeletedMessage `bun:"rel:has-many,join:id=deletion_context_id"`
}

type DeletedMessage struct {
	bun.BaseModel `bun:"table:api_deletedmessage,alias:dm"`

	ID                int64             `bun:"id,pk"`
	AuthorID          int64             `bun:"author_id,notnull"`
	ChannelID         int64             `bun:"channel_id,notnull"`
	Content           string            `bun:"content,notnull"`
	Embeds            []json.RawMessage `bun:"embeds,type:jsonb,notnull"`
	Attachments       []string          `bun:"attachments,array,notnull"`
	DeletionContextID int64             `bun:"deletion_context_id,notnull"`
}

// Timestamp is the time Discord created the message, taken from its snowflake id.
func (m *DeletedMessage) Timestamp() time.Time {
	return snowflake.ID(m.ID).Time()
}
