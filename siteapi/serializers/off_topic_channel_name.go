package serializers

import "github.com/pydis/site-api/siteapi/database/models"

type offTopicChannelNamePayload struct {
	Name *string `json:"name" validate:"required,notblank,max=96,channelname"`
}

// NewOffTopicChannelNameSerializer represents each name as a bare string so
// listings come out as a plain array of names.
func NewOffTopicChannelNameSerializer(writer Writer[models.OffTopicChannelName]) Serializer[models.OffTopicChannelName] {
	return &simpleSerializer[models.OffTopicChannelName, offTopicChannelNamePayload]{
		writer: writer,
		toModel: func(p *offTopicChannelNamePayload) *models.OffTopicChannelName {
			return &models.OffTopicChannelName{Name: *p.Name}
		},
		represent: func(m *models.OffTopicChannelName) any {
			return m.Name
		},
	}
}
