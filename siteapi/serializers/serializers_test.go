package serializers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pydis/site-api/siteapi/config"
	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers/mock"
)

// roundTrip represents m, encodes it and validates the encoding again.
func roundTrip[M any](t *testing.T, s Serializer[M], m *M) *M {
	t.Helper()
	rep, err := s.Represent(context.Background(), m)
	require.NoError(t, err)
	data, err := json.Marshal(rep)
	require.NoError(t, err)
	got, err := s.Validate(context.Background(), data)
	require.NoError(t, err)
	return got
}

func TestRoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("bot setting", func(t *testing.T) {
		m := &models.BotSetting{Name: "defcon", Data: json.RawMessage(`{"enabled":false,"days":7}`)}
		got := roundTrip[models.BotSetting](t, NewBotSettingSerializer(mock.NewMockWriter[models.BotSetting](ctrl)), m)
		assert.Equal(t, m.Name, got.Name)
		assert.JSONEq(t, string(m.Data), string(got.Data))
	})

	t.Run("documentation link", func(t *testing.T) {
		m := &models.DocumentationLink{Package: "aiohttp", BaseURL: "https://docs.aiohttp.org/en/stable/", InventoryURL: "https://docs.aiohttp.org/en/stable/objects.inv"}
		got := roundTrip[models.DocumentationLink](t, NewDocumentationLinkSerializer(mock.NewMockWriter[models.DocumentationLink](ctrl)), m)
		assert.Equal(t, m, got)
	})

	t.Run("log entry", func(t *testing.T) {
		m := &models.LogEntry{Application: "bot", LoggerName: "bot.cogs.filtering", Timestamp: fixedNow, Level: "warning", Module: "filtering", Line: 120, Message: "token removed"}
		got := roundTrip[models.LogEntry](t, NewLogEntrySerializer(mock.NewMockWriter[models.LogEntry](ctrl)), m)
		assert.Equal(t, m, got)
	})

	t.Run("reminder", func(t *testing.T) {
		m := &models.Reminder{ID: 4, Active: true, AuthorID: 1, ChannelID: 555, Content: "stretch", Expiration: fixedNow.Add(time.Hour)}
		got := roundTrip[models.Reminder](t, NewReminderSerializer(existingUsers(t, 1), mock.NewMockWriter[models.Reminder](ctrl)), m)
		want := *m
		want.ID = 0
		assert.Equal(t, &want, got)
	})

	t.Run("role", func(t *testing.T) {
		m := &models.Role{ID: 267627879762755584, Name: "Owners", Colour: 0x1abc9c, Permissions: 8}
		got := roundTrip(t, NewRoleSerializer(mock.NewMockWriter[models.Role](ctrl)), m)
		assert.Equal(t, m, got)
	})

	t.Run("snake name", func(t *testing.T) {
		m := &models.SnakeName{Name: "Python", Scientific: "Pythonidae"}
		got := roundTrip(t, NewSnakeNameSerializer(mock.NewMockWriter[models.SnakeName](ctrl)), m)
		assert.Equal(t, m, got)
	})

	t.Run("special snake", func(t *testing.T) {
		m := &models.SpecialSnake{Name: "Bob Ross", Images: []string{"https://example.com/bob.png"}, Info: "happy little snake"}
		got := roundTrip(t, NewSpecialSnakeSerializer(mock.NewMockWriter[models.SpecialSnake](ctrl)), m)
		assert.Equal(t, m, got)
	})

	t.Run("tag", func(t *testing.T) {
		m := &models.Tag{Title: "ask", Embed: json.RawMessage(`{"title":"Asking good questions","description":"Be specific."}`)}
		got := roundTrip[models.Tag](t, NewTagSerializer(mock.NewMockWriter[models.Tag](ctrl)), m)
		assert.Equal(t, m.Title, got.Title)
		assert.JSONEq(t, string(m.Embed), string(got.Embed))
	})

	t.Run("filter list", func(t *testing.T) {
		alert := false
		embed := ""
		m := &models.FilterList{ID: 2, Name: "redirect", ListType: models.FilterListDeny, SendAlert: &alert, DMEmbed: &embed}
		got := roundTrip(t, NewFilterListSerializer(mock.NewMockWriter[models.FilterList](ctrl)), m)
		want := *m
		want.ID = 0
		assert.Equal(t, &want, got)
	})

	t.Run("filter", func(t *testing.T) {
		lists := mock.NewMockKeyLookup(ctrl)
		lists.EXPECT().Exists(gomock.Any(), int64(2)).Return(true, nil)
		m := &models.Filter{ID: 7, Content: "discord.gg", FilterListID: 2}
		got := roundTrip[models.Filter](t, NewFilterSerializer(lists, mock.NewMockWriter[models.Filter](ctrl)), m)
		want := *m
		want.ID = 0
		assert.Equal(t, &want, got)
	})
}

func TestSimpleSerializers_FieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name     string
		validate func([]byte) error
		payload  string
		field    string
		msg      string
	}{
		{
			name:     "bot setting name choice",
			validate: validateFunc[models.BotSetting](NewBotSettingSerializer(mock.NewMockWriter[models.BotSetting](ctrl))),
			payload:  `{"name": "prefix", "data": {}}`,
			field:    "name",
			msg:      `"prefix" is not a valid choice.`,
		},
		{
			name:     "bot setting null data",
			validate: validateFunc[models.BotSetting](NewBotSettingSerializer(mock.NewMockWriter[models.BotSetting](ctrl))),
			payload:  `{"name": "news", "data": null}`,
			field:    "data",
			msg:      msgRequired,
		},
		{
			name:     "documentation base url needs slash",
			validate: validateFunc[models.DocumentationLink](NewDocumentationLinkSerializer(mock.NewMockWriter[models.DocumentationLink](ctrl))),
			payload:  `{"package": "attrs", "base_url": "https://www.attrs.org/en/stable", "inventory_url": "https://www.attrs.org/en/stable/objects.inv"}`,
			field:    "base_url",
			msg:      `Ensure this value ends with "/".`,
		},
		{
			name:     "documentation inventory url",
			validate: validateFunc[models.DocumentationLink](NewDocumentationLinkSerializer(mock.NewMockWriter[models.DocumentationLink](ctrl))),
			payload:  `{"package": "attrs", "base_url": "", "inventory_url": "not a url"}`,
			field:    "inventory_url",
			msg:      "Enter a valid URL.",
		},
		{
			name:     "log level choice",
			validate: validateFunc[models.LogEntry](NewLogEntrySerializer(mock.NewMockWriter[models.LogEntry](ctrl))),
			payload:  `{"application": "bot", "logger_name": "a", "level": "trace", "module": "m", "line": 1, "message": "x"}`,
			field:    "level",
			msg:      `"trace" is not a valid choice.`,
		},
		{
			name:     "role permissions ceiling",
			validate: validateFunc(NewRoleSerializer(mock.NewMockWriter[models.Role](ctrl))),
			payload:  `{"id": 1, "name": "r", "colour": 0, "permissions": 8589934593}`,
			field:    "permissions",
			msg:      "Ensure this value is less than or equal to 8589934592.",
		},
		{
			name:     "snake fact blank",
			validate: validateFunc(NewSnakeFactSerializer(mock.NewMockWriter[models.SnakeFact](ctrl))),
			payload:  `{"fact": ""}`,
			field:    "fact",
			msg:      "This field may not be blank.",
		},
		{
			name:     "snake idiom missing",
			validate: validateFunc(NewSnakeIdiomSerializer(mock.NewMockWriter[models.SnakeIdiom](ctrl))),
			payload:  `{}`,
			field:    "idiom",
			msg:      msgRequired,
		},
		{
			name:     "special snake image url",
			validate: validateFunc(NewSpecialSnakeSerializer(mock.NewMockWriter[models.SpecialSnake](ctrl))),
			payload:  `{"name": "s", "images": ["nope"], "info": "i"}`,
			field:    "images[0]",
			msg:      "Enter a valid URL.",
		},
		{
			name:     "filter list type",
			validate: validateFunc(NewFilterListSerializer(mock.NewMockWriter[models.FilterList](ctrl))),
			payload:  `{"name": "token", "list_type": 3}`,
			field:    "list_type",
			msg:      `"3" is not a valid choice.`,
		},
		{
			name:     "reminder expiration format",
			validate: validateFunc[models.Reminder](NewReminderSerializer(existingUsers(t, 1), mock.NewMockWriter[models.Reminder](ctrl))),
			payload:  `{"author": 1, "channel_id": 2, "content": "c", "expiration": "soon"}`,
			field:    "expiration",
			msg:      msgDatetime,
		},
		{
			name:     "tag embed",
			validate: validateFunc[models.Tag](NewTagSerializer(mock.NewMockWriter[models.Tag](ctrl))),
			payload:  `{"title": "t", "embed": {"footer": {"text": "only a footer"}}}`,
			field:    "embed",
			msg:      "Embed must contain one of the fields [description fields image title video].",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate([]byte(tt.payload))

			var verrs *ValidationError
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, []string{tt.msg}, verrs.Fields[tt.field])
		})
	}
}

func TestRolePermissionsBoundary(t *testing.T) {
	s := NewRoleSerializer(mock.NewMockWriter[models.Role](gomock.NewController(t)))
	data, err := json.Marshal(map[string]any{"id": 1, "name": "max", "colour": 0, "permissions": config.MaxRolePermissions})
	require.NoError(t, err)

	m, err := s.Validate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, int64(config.MaxRolePermissions), m.Permissions)
}

func TestDocumentationLinkBlankBaseURL(t *testing.T) {
	s := NewDocumentationLinkSerializer(mock.NewMockWriter[models.DocumentationLink](gomock.NewController(t)))
	m, err := s.Validate(context.Background(), []byte(`{"package": "pep8", "inventory_url": "https://peps.python.org/objects.inv"}`))
	require.NoError(t, err)
	assert.Equal(t, "", m.BaseURL)
}

func TestFilterSerializer_UnknownList(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockKeyLookup(ctrl)
	lists.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)

	s := NewFilterSerializer(lists, mock.NewMockWriter[models.Filter](ctrl))
	_, err := s.Validate(context.Background(), []byte(`{"content": "x", "filter_list": 99, "dm_embed": "hello"}`))

	var verrs *ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{`Invalid pk "99" - object does not exist.`}, verrs.Fields["filter_list"])
}

func validateFunc[M any](s Serializer[M]) func([]byte) error {
	return func(data []byte) error {
		_, err := s.Validate(context.Background(), data)
		return err
	}
}
