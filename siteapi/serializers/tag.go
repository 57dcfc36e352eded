package serializers

import (
	"context"
	"encoding/json"

	"github.com/pydis/site-api/siteapi/database/models"
)

type TagRepresentation struct {
	Title string          `json:"title"`
	Embed json.RawMessage `json:"embed"`
}

type tagPayload struct {
	Title *string         `json:"title" validate:"required,notblank,max=100"`
	Embed json.RawMessage `json:"embed"`
}

type TagSerializer struct {
	writer Writer[models.Tag]
}

func NewTagSerializer(writer Writer[models.Tag]) *TagSerializer {
	return &TagSerializer{writer: writer}
}

func (s *TagSerializer) Validate(_ context.Context, data []byte) (*models.Tag, error) {
	var p tagPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	if isNullJSON(p.Embed) {
		verrs.Add("embed", msgRequired)
	} else {
		for _, msg := range validateEmbed(p.Embed) {
			verrs.Add("embed", msg)
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.Tag{Title: *p.Title, Embed: p.Embed}, nil
}

func (s *TagSerializer) Represent(_ context.Context, m *models.Tag) (any, error) {
	return &TagRepresentation{Title: m.Title, Embed: m.Embed}, nil
}

func (s *TagSerializer) Create(ctx context.Context, m *models.Tag) error {
	return s.writer.Create(ctx, m)
}
