package models

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:api_user,alias:u"`

	ID            int64   `bun:"id,pk"`
	AvatarHash    *string `bun:"avatar_hash"`
	Name          string  `bun:"name,notnull"`
	Discriminator int16   `bun:"discriminator,notnull"`
	Roles         []int64 `bun:"roles,array,notnull"`
	InGuild       bool    `bun:"in_guild,notnull"`
}
