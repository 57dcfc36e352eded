package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Reminder struct {
	bun.BaseModel `bun:"table:api_reminder,alias:rm"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Active     bool      `bun:"active,notnull"`
	AuthorID   int64     `bun:"author_id,notnull"`
	ChannelID  int64     `bun:"channel_id,notnull"`
	Content    string    `bun:"content,notnull"`
	Expiration time.Time `bun:"expiration,notnull"`
}
