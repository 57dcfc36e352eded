package models

import (
	"time"

	"github.com/uptrace/bun"
)

type InfractionType string

const (
	InfractionNote      InfractionType = "note"
	InfractionWarning   InfractionType = "warning"
	InfractionWatch     InfractionType = "watch"
	InfractionMute      InfractionType = "mute"
	InfractionKick      InfractionType = "kick"
	InfractionBan       InfractionType = "ban"
	InfractionSuperstar InfractionType = "superstar"
	InfractionVoiceBan  InfractionType = "voice_ban"
)

// InfractionTypes lists every accepted infraction type in declaration order.
var InfractionTypes = []InfractionType{
	InfractionNote,
	InfractionWarning,
	InfractionWatch,
	InfractionMute,
	InfractionKick,
	InfractionBan,
	InfractionSuperstar,
	InfractionVoiceBan,
}

// CanExpire reports whether infractions of this type may carry an expiry.
func (t InfractionType) CanExpire() bool {
	return t != InfractionKick && t != InfractionWarning
}

// CanBeHidden reports whether infractions of this type may be hidden.
func (t InfractionType) CanBeHidden() bool {
	return t != InfractionSuperstar
}

type Infraction struct {
	bun.BaseModel `bun:"table:api_infraction,alias:i"`

	ID         int64          `bun:"id,pk,autoincrement"`
	InsertedAt time.Time      `bun:"inserted_at,notnull"`
	ExpiresAt  *time.Time     `bun:"expires_at"`
	Active     bool           `bun:"active,notnull"`
	UserID     int64          `bun:"user_id,notnull"`
	ActorID    int64          `bun:"actor_id,notnull"`
	Type       InfractionType `bun:"type,notnull"`
	Reason     *string        `bun:"reason"`
	Hidden     bool           `bun:"hidden,notnull"`
}
