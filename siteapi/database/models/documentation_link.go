package models

import "github.com/uptrace/bun"

type DocumentationLink struct {
	bun.BaseModel `bun:"table:api_documentationlink,alias:dl"`

	Package      string `bun:"package,pk"`
	BaseURL      string `bun:"base_url,notnull"`
	InventoryURL string `bun:"inventory_url,notnull"`
}
