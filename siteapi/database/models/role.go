package models

import "github.com/uptrace/bun"

type Role struct {
	bun.BaseModel `bun:"table:api_role,alias:r"`

	ID          int64  `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Colour      int32  `bun:"colour,notnull"`
	Permissions int64  `bun:"permissions,notnull"`
}
