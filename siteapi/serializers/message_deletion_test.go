package serializers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers/mock"
)

func newTestDeletionSerializers(t *testing.T, writer DeletionContextWriter, userIDs ...int64) *MessageDeletionContextSerializer {
	ctrl := gomock.NewController(t)
	users := existingUsers(t, userIDs...)
	contexts := mock.NewMockKeyLookup(ctrl)
	messages := NewDeletedMessageSerializer(users, contexts, mock.NewMockWriter[models.DeletedMessage](ctrl))

	s := NewMessageDeletionContextSerializer(users, messages, writer)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestMessageDeletionContextSerializer_CreateNested(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockDeletionContextWriter(ctrl)
	s := newTestDeletionSerializers(t, writer, 1, 2)

	payload := `{
		"actor": 1,
		"deletedmessage_set": [
			{"id": 500, "author": 2, "channel_id": 100, "content": "hi", "embeds": []}
		]
	}`

	dc, err := s.Validate(context.Background(), []byte(payload))
	require.NoError(t, err)

	var stored []*models.DeletedMessage
	writer.EXPECT().
		CreateWithMessages(gomock.Any(), dc, gomock.Len(1)).
		DoAndReturn(func(_ context.Context, c *models.MessageDeletionContext, msgs []*models.DeletedMessage) error {
			c.ID = 31
			for _, m := range msgs {
				m.DeletionContextID = c.ID
			}
			c.DeletedMessages = msgs
			stored = msgs
			return nil
		})

	require.NoError(t, s.Create(context.Background(), dc))

	require.Len(t, stored, 1)
	assert.Equal(t, int64(31), stored[0].DeletionContextID)
	assert.Equal(t, int64(2), stored[0].AuthorID)
	assert.Equal(t, int64(100), stored[0].ChannelID)
	assert.Equal(t, "hi", stored[0].Content)
	assert.Equal(t, []string{}, stored[0].Attachments)
	require.NotNil(t, dc.ActorID)
	assert.Equal(t, int64(1), *dc.ActorID)
	assert.Equal(t, fixedNow, dc.Creation)

	rep, err := s.Represent(context.Background(), dc)
	require.NoError(t, err)
	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"actor": 1,
		"creation": "2024-03-01T12:00:00Z",
		"id": 31,
		"deletedmessage_set": [
			{"id": 500, "author": 2, "channel_id": 100, "content": "hi", "embeds": [], "deletion_context": 31}
		]
	}`, string(data))
}

// The message id is the message snowflake and the table's primary key, so a
// nested message without one is rejected and nothing is written.
func TestMessageDeletionContextSerializer_NestedMessageWithoutID(t *testing.T) {
	writer := mock.NewMockDeletionContextWriter(gomock.NewController(t))
	s := newTestDeletionSerializers(t, writer, 1, 2)

	payload := `{
		"actor": 1,
		"deletedmessage_set": [
			{"author": 2, "channel_id": 100, "content": "hi", "embeds": []}
		]
	}`

	dc, err := s.Validate(context.Background(), []byte(payload))
	assert.Nil(t, dc)

	var verrs *ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string][]string{
		"deletedmessage_set[0].id": {msgRequired},
	}, verrs.Fields)
}

func TestMessageDeletionContextSerializer_CreateFailure(t *testing.T) {
	writer := mock.NewMockDeletionContextWriter(gomock.NewController(t))
	s := newTestDeletionSerializers(t, writer, 1, 2)

	dc, err := s.Validate(context.Background(), []byte(`{"actor": null, "deletedmessage_set": [{"id": 1, "author": 2, "channel_id": 3, "content": "", "embeds": []}]}`))
	require.NoError(t, err)
	assert.Nil(t, dc.ActorID)

	writer.EXPECT().CreateWithMessages(gomock.Any(), dc, gomock.Any()).Return(errors.New("insert deleted messages: boom"))
	assert.ErrorContains(t, s.Create(context.Background(), dc), "boom")
}

func TestMessageDeletionContextSerializer_NestedErrors(t *testing.T) {
	s := newTestDeletionSerializers(t, mock.NewMockDeletionContextWriter(gomock.NewController(t)), 1, 2)

	payload := `{
		"actor": 3,
		"creation": "2024-01-01T00:00:00Z",
		"deletedmessage_set": [
			{"id": 1, "author": 2, "channel_id": 100, "content": "ok", "embeds": []},
			{"id": 2, "author": 404, "channel_id": 100, "content": "bad", "embeds": [{"colour": 1}]},
			{"id": 3, "channel_id": 100, "content": "no author", "embeds": []}
		]
	}`

	_, err := s.Validate(context.Background(), []byte(payload))

	var verrs *ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{`Invalid pk "3" - object does not exist.`}, verrs.Fields["actor"])
	assert.Equal(t, []string{`Invalid pk "404" - object does not exist.`}, verrs.Fields["deletedmessage_set[1].author"])
	assert.Contains(t, verrs.Fields["deletedmessage_set[1].embeds[0]"], "Unknown field name: 'colour'")
	assert.Equal(t, []string{msgRequired}, verrs.Fields["deletedmessage_set[2].author"])
	assert.NotContains(t, verrs.Fields, "deletedmessage_set[0].author")
}

func TestMessageDeletionContextSerializer_MissingMessages(t *testing.T) {
	s := newTestDeletionSerializers(t, mock.NewMockDeletionContextWriter(gomock.NewController(t)), 1)

	_, err := s.Validate(context.Background(), []byte(`{"actor": 1}`))

	var verrs *ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{msgRequired}, verrs.Fields["deletedmessage_set"])
}

func TestDeletedMessageSerializer(t *testing.T) {
	ctrl := gomock.NewController(t)
	contexts := mock.NewMockKeyLookup(ctrl)
	writer := mock.NewMockWriter[models.DeletedMessage](ctrl)
	s := NewDeletedMessageSerializer(existingUsers(t, 2), contexts, writer)

	contexts.EXPECT().Exists(gomock.Any(), int64(31)).Return(true, nil)
	m, err := s.Validate(context.Background(), []byte(`{"id": 9, "author": 2, "channel_id": 1, "content": "x", "embeds": [], "deletion_context": 31}`))
	require.NoError(t, err)
	assert.Equal(t, int64(31), m.DeletionContextID)
	assert.Equal(t, fixedSnowflakeTime(9), m.Timestamp())

	writer.EXPECT().Create(gomock.Any(), m).Return(nil)
	require.NoError(t, s.Create(context.Background(), m))

	contexts.EXPECT().Exists(gomock.Any(), int64(32)).Return(false, nil)
	_, err = s.Validate(context.Background(), []byte(`{"id": 9, "author": 2, "channel_id": 1, "content": "x", "embeds": [], "deletion_context": 32}`))
	var verrs *ValidationError
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{`Invalid pk "32" - object does not exist.`}, verrs.Fields["deletion_context"])

	orphan, err := s.Validate(context.Background(), []byte(`{"id": 10, "author": 2, "channel_id": 1, "content": "x", "embeds": []}`))
	require.NoError(t, err)
	err = s.Create(context.Background(), orphan)
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{msgRequired}, verrs.Fields["deletion_context"])
}

// fixedSnowflakeTime is the Discord epoch plus the timestamp bits of id.
func fixedSnowflakeTime(id int64) time.Time {
	return time.UnixMilli(id>>22 + 1420070400000)
}
