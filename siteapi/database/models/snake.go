package models

import "github.com/uptrace/bun"

type SnakeFact struct {
	bun.BaseModel `bun:"table:api_snakefact,alias:sf"`

	Fact string `bun:"fact,pk"`
}

type SnakeIdiom struct {
	bun.BaseModel `bun:"table:api_snakeidiom,alias:si"`

	Idiom string `bun:"idiom,pk"`
}

type SnakeName struct {
	bun.BaseModel `bun:"table:api_snakename,alias:sn"`

	Name       string `bun:"name,pk"`
	Scientific string `bun:"scientific,notnull"`
}

type SpecialSnake struct {
	bun.BaseModel `bun:"table:api_specialsnake,alias:ss"`

	Name   string   `bun:"name,pk"`
	Images []string `bun:"images,array,notnull"`
	Info   string   `bun:"info,notnull"`
}
