package models

import "github.com/uptrace/bun"

type FilterListType int16

const (
	FilterListDeny  FilterListType = 0
	FilterListAllow FilterListType = 1
)

type FilterList struct {
	bun.BaseModel `bun:"table:api_filterlist,alias:fl"`

	ID        int64          `bun:"id,pk,autoincrement"`
	Name      string         `bun:"name,notnull"`
	ListType  FilterListType `bun:"list_type,notnull"`
	SendAlert *bool          `bun:"send_alert"`
	DMEmbed   *string        `bun:"dm_embed"`
}

type Filter struct {
	bun.BaseModel `bun:"table:api_filter,alias:f"`

	ID           int64   `bun:"id,pk,autoincrement"`
	Content      string  `bun:"content,notnull"`
	Description  *string `bun:"description"`
	FilterListID int64   `bun:"filter_list_id,notnull"`
	SendAlert    *bool   `bun:"send_alert"`
	DMEmbed      *string `bun:"dm_embed"`
}
