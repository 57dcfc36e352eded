package serializers

import (
	"context"

	"github.com/pydis/site-api/siteapi/database/models"
)

type FilterListRepresentation struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	ListType  models.FilterListType `json:"list_type"`
	SendAlert *bool                 `json:"send_alert"`
	DMEmbed   *string               `json:"dm_embed"`
}

type filterListPayload struct {
	Name      *string `json:"name" validate:"required,notblank,max=50"`
	ListType  *int16  `json:"list_type" validate:"required,oneof=0 1"`
	SendAlert *bool   `json:"send_alert"`
	DMEmbed   *string `json:"dm_embed" validate:"omitempty,max=2000"`
}

func NewFilterListSerializer(writer Writer[models.FilterList]) Serializer[models.FilterList] {
	return &simpleSerializer[models.FilterList, filterListPayload]{
		writer: writer,
		toModel: func(p *filterListPayload) *models.FilterList {
			return &models.FilterList{
				Name:      *p.Name,
				ListType:  models.FilterListType(*p.ListType),
				SendAlert: p.SendAlert,
				DMEmbed:   p.DMEmbed,
			}
		},
		represent: func(m *models.FilterList) any {
			return &FilterListRepresentation{
				ID:        m.ID,
				Name:      m.Name,
				ListType:  m.ListType,
				SendAlert: m.SendAlert,
				DMEmbed:   m.DMEmbed,
			}
		},
	}
}

type FilterRepresentation struct {
	ID          int64   `json:"id"`
	Content     string  `json:"content"`
	Description *string `json:"description"`
	FilterList  int64   `json:"filter_list"`
	SendAlert   *bool   `json:"send_alert"`
	DMEmbed     *string `json:"dm_embed"`
}

type filterPayload struct {
	Content     *string `json:"content" validate:"required,notblank"`
	Description *string `json:"description"`
	FilterList  *int64  `json:"filter_list" validate:"required"`
	SendAlert   *bool   `json:"send_alert"`
	DMEmbed     *string `json:"dm_embed" validate:"omitempty,max=2000"`
}

// FilterSerializer leaves send_alert and dm_embed unset when the filter
// should inherit them from its list.
type FilterSerializer struct {
	lists  KeyLookup
	writer Writer[models.Filter]
}

func NewFilterSerializer(lists KeyLookup, writer Writer[models.Filter]) *FilterSerializer {
	return &FilterSerializer{lists: lists, writer: writer}
}

func (s *FilterSerializer) Validate(ctx context.Context, data []byte) (*models.Filter, error) {
	var p filterPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	if p.FilterList != nil {
		if err := checkRef(ctx, verrs, "filter_list", *p.FilterList, s.lists); err != nil {
			return nil, err
		}
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.Filter{
		Content:      *p.Content,
		Description:  p.Description,
		FilterListID: *p.FilterList,
		SendAlert:    p.SendAlert,
		DMEmbed:      p.DMEmbed,
	}, nil
}

func (s *FilterSerializer) Represent(_ context.Context, m *models.Filter) (any, error) {
	return &FilterRepresentation{
		ID:          m.ID,
		Content:     m.Content,
		Description: m.Description,
		FilterList:  m.FilterListID,
		SendAlert:   m.SendAlert,
		DMEmbed:     m.DMEmbed,
	}, nil
}

func (s *FilterSerializer) Create(ctx context.Context, m *models.Filter) error {
	return s.writer.Create(ctx, m)
}
