package serializers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers/mock"
)

func TestOffTopicChannelNameSerializer_RepresentBareString(t *testing.T) {
	s := NewOffTopicChannelNameSerializer(mock.NewMockWriter[models.OffTopicChannelName](gomock.NewController(t)))

	rep, err := s.Represent(context.Background(), &models.OffTopicChannelName{Name: "general-chat", Used: true})
	require.NoError(t, err)
	assert.Equal(t, "general-chat", rep)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Equal(t, `"general-chat"`, string(data))
}

func TestOffTopicChannelNameSerializer_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockWriter[models.OffTopicChannelName](ctrl)
	s := NewOffTopicChannelNameSerializer(writer)

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "plain", payload: `{"name": "snakes-and-ladders"}`},
		{name: "with apostrophe", payload: `{"name": "lemon's-lounge"}`},
		{name: "uppercase", payload: `{"name": "General"}`, wantErr: "Enter a valid value."},
		{name: "spaces", payload: `{"name": "general chat"}`, wantErr: "Enter a valid value."},
		{name: "missing", payload: `{}`, wantErr: msgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := s.Validate(context.Background(), []byte(tt.payload))
			if tt.wantErr != "" {
				var verrs *ValidationError
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, []string{tt.wantErr}, verrs.Fields["name"])
				return
			}
			require.NoError(t, err)
			assert.False(t, m.Used)
		})
	}

	m := &models.OffTopicChannelName{Name: "x"}
	writer.EXPECT().Create(gomock.Any(), m).Return(nil)
	require.NoError(t, s.Create(context.Background(), m))
}
