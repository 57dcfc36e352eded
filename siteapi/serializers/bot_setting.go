package serializers

import (
	"context"
	"encoding/json"

	"github.com/pydis/site-api/siteapi/database/models"
)

type BotSettingRepresentation struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type botSettingPayload struct {
	Name *string         `json:"name" validate:"required,notblank,max=50,oneof=defcon news"`
	Data json.RawMessage `json:"data"`
}

type BotSettingSerializer struct {
	writer Writer[models.BotSetting]
}

func NewBotSettingSerializer(writer Writer[models.BotSetting]) *BotSettingSerializer {
	return &BotSettingSerializer{writer: writer}
}

func (s *BotSettingSerializer) Validate(_ context.Context, data []byte) (*models.BotSetting, error) {
	var p botSettingPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	if isNullJSON(p.Data) {
		verrs.Add("data", msgRequired)
	}
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.BotSetting{Name: *p.Name, Data: p.Data}, nil
}

func (s *BotSettingSerializer) Represent(_ context.Context, m *models.BotSetting) (any, error) {
	return &BotSettingRepresentation{Name: m.Name, Data: m.Data}, nil
}

func (s *BotSettingSerializer) Create(ctx context.Context, m *models.BotSetting) error {
	return s.writer.Create(ctx, m)
}
