package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Nomination struct {
	bun.BaseModel `bun:"table:api_nomination,alias:n"`

	ID               int64      `bun:"id,pk,autoincrement"`
	Active           bool       `bun:"active,notnull"`
	ActorID          int64      `bun:"actor_id,notnull"`
	Reason           string     `bun:"reason,notnull"`
	UserID           int64      `bun:"user_id,notnull"`
	InsertedAt       time.Time  `bun:"inserted_at,nullzero,notnull,default:current_timestamp"`
	UnnominateReason string     `bun:"unnominate_reason,notnull"`
	UnwatchedAt      *time.Time `bun:"unwatched_at"`
}
