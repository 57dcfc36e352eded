package models

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

type Tag struct {
	bun.BaseModel `bun:"table:api_tag,alias:t"`

	Title string          `bun:"title,pk"`
	Embed json.RawMessage `bun:"embed,type:jsonb,notnull"`
}
