package serializers

import (
	"slices"

	"github.com/pydis/site-api/siteapi/database/models"
)

type SnakeFactRepresentation struct {
	Fact string `json:"fact"`
}

type snakeFactPayload struct {
	Fact *string `json:"fact" validate:"required,notblank,max=200"`
}

func NewSnakeFactSerializer(writer Writer[models.SnakeFact]) Serializer[models.SnakeFact] {
	return &simpleSerializer[models.SnakeFact, snakeFactPayload]{
		writer: writer,
		toModel: func(p *snakeFactPayload) *models.SnakeFact {
			return &models.SnakeFact{Fact: *p.Fact}
		},
		represent: func(m *models.SnakeFact) any {
			return &SnakeFactRepresentation{Fact: m.Fact}
		},
	}
}

type SnakeIdiomRepresentation struct {
	Idiom string `json:"idiom"`
}

type snakeIdiomPayload struct {
	Idiom *string `json:"idiom" validate:"required,notblank,max=140"`
}

func NewSnakeIdiomSerializer(writer Writer[models.SnakeIdiom]) Serializer[models.SnakeIdiom] {
	return &simpleSerializer[models.SnakeIdiom, snakeIdiomPayload]{
		writer: writer,
		toModel: func(p *snakeIdiomPayload) *models.SnakeIdiom {
			return &models.SnakeIdiom{Idiom: *p.Idiom}
		},
		represent: func(m *models.SnakeIdiom) any {
			return &SnakeIdiomRepresentation{Idiom: m.Idiom}
		},
	}
}

type SnakeNameRepresentation struct {
	Name       string `json:"name"`
	Scientific string `json:"scientific"`
}

type snakeNamePayload struct {
	Name       *string `json:"name" validate:"required,notblank,max=100"`
	Scientific *string `json:"scientific" validate:"required,notblank,max=150"`
}

func NewSnakeNameSerializer(writer Writer[models.SnakeName]) Serializer[models.SnakeName] {
	return &simpleSerializer[models.SnakeName, snakeNamePayload]{
		writer: writer,
		toModel: func(p *snakeNamePayload) *models.SnakeName {
			return &models.SnakeName{Name: *p.Name, Scientific: *p.Scientific}
		},
		represent: func(m *models.SnakeName) any {
			return &SnakeNameRepresentation{Name: m.Name, Scientific: m.Scientific}
		},
	}
}

type SpecialSnakeRepresentation struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Info   string   `json:"info"`
}

type specialSnakePayload struct {
	Name   *string  `json:"name" validate:"required,notblank,max=140"`
	Images []string `json:"images" validate:"required,dive,max=200,url"`
	Info   *string  `json:"info" validate:"required,notblank"`
}

func NewSpecialSnakeSerializer(writer Writer[models.SpecialSnake]) Serializer[models.SpecialSnake] {
	return &simpleSerializer[models.SpecialSnake, specialSnakePayload]{
		writer: writer,
		toModel: func(p *specialSnakePayload) *models.SpecialSnake {
			return &models.SpecialSnake{Name: *p.Name, Images: p.Images, Info: *p.Info}
		},
		represent: func(m *models.SpecialSnake) any {
			images := slices.Clone(m.Images)
			if images == nil {
				images = []string{}
			}
			return &SpecialSnakeRepresentation{Name: m.Name, Images: images, Info: m.Info}
		},
	}
}
