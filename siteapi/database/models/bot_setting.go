package models

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

// BotSettingNames are the only setting keys the bot reads.
var BotSettingNames = []string{"defcon", "news"}

type BotSetting struct {
	bun.BaseModel `bun:"table:api_botsetting,alias:bs"`

	Name string          `bun:"name,pk"`
	Data json.RawMessage `bun:"data,type:jsonb,notnull"`
}
