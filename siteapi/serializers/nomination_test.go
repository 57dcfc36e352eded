package serializers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/serializers/mock"
)

func TestNominationSerializer_Validate(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
		wantMsg   string
	}{
		{
			name:      "active with unnominate reason",
			payload:   `{"active": true, "actor": 1, "user": 2, "reason": "helpful", "unnominate_reason": "left"}`,
			wantField: "unnominate_reason",
			wantMsg:   "An active nomination can't have an unnominate reason",
		},
		{
			name:      "default active with unnominate reason",
			payload:   `{"actor": 1, "user": 2, "unnominate_reason": "left"}`,
			wantField: "unnominate_reason",
			wantMsg:   "An active nomination can't have an unnominate reason",
		},
		{
			name:      "unknown actor",
			payload:   `{"actor": 77, "user": 2}`,
			wantField: "actor",
			wantMsg:   `Invalid pk "77" - object does not exist.`,
		},
		{
			name:      "missing user",
			payload:   `{"actor": 1}`,
			wantField: "user",
			wantMsg:   msgRequired,
		},
	}

	s := NewNominationSerializer(existingUsers(t, 1, 2), mock.NewMockWriter[models.Nomination](gomock.NewController(t)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Validate(context.Background(), []byte(tt.payload))

			var verrs *ValidationError
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, []string{tt.wantMsg}, verrs.Fields[tt.wantField])
		})
	}
}

func TestNominationSerializer_ValidateAccepted(t *testing.T) {
	s := NewNominationSerializer(existingUsers(t, 1, 2), mock.NewMockWriter[models.Nomination](gomock.NewController(t)))

	tests := []struct {
		name    string
		payload string
		want    *models.Nomination
	}{
		{
			name:    "defaults",
			payload: `{"actor": 1, "user": 2}`,
			want:    &models.Nomination{Active: true, ActorID: 1, UserID: 2},
		},
		{
			name:    "ended nomination",
			payload: `{"active": false, "actor": 1, "user": 2, "reason": "r", "unnominate_reason": "done", "unwatched_at": "2024-02-01T00:00:00Z"}`,
			want: &models.Nomination{
				ActorID:          1,
				UserID:           2,
				Reason:           "r",
				UnnominateReason: "done",
				UnwatchedAt:      timePtr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name:    "active with empty unnominate reason",
			payload: `{"active": true, "actor": 1, "user": 2, "unnominate_reason": ""}`,
			want:    &models.Nomination{Active: true, ActorID: 1, UserID: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Validate(context.Background(), []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNominationSerializer_RoundTrip(t *testing.T) {
	s := NewNominationSerializer(existingUsers(t, 1, 2), mock.NewMockWriter[models.Nomination](gomock.NewController(t)))
	original := &models.Nomination{
		ID:               8,
		Active:           false,
		ActorID:          1,
		Reason:           "great helper",
		UserID:           2,
		InsertedAt:       fixedNow,
		UnnominateReason: "became helper",
		UnwatchedAt:      timePtr(fixedNow.Add(48 * time.Hour)),
	}

	rep, err := s.Represent(context.Background(), original)
	require.NoError(t, err)
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	got, err := s.Validate(context.Background(), data)
	require.NoError(t, err)

	want := *original
	want.ID = 0
	want.InsertedAt = time.Time{}
	assert.Equal(t, &want, got)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
