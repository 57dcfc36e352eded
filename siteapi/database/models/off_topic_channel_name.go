package models

import "github.com/uptrace/bun"

type OffTopicChannelName struct {
	bun.BaseModel `bun:"table:api_offtopicchannelname,alias:ot"`

	Name string `bun:"name,pk"`
	Used bool   `bun:"used,notnull"`
}
