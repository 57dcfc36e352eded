package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/pydis/site-api/backend/middleware"
	"github.com/pydis/site-api/siteapi/database/models"
	"github.com/pydis/site-api/siteapi/database/repositories"
	"github.com/pydis/site-api/siteapi/serializers"
)

type memoryUserStore struct {
	users map[int64]*models.User
}

func newMemoryUserStore(users ...*models.User) *memoryUserStore {
	s := &memoryUserStore{users: make(map[int64]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memoryUserStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

func (s *memoryUserStore) Get(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "user", ID: id}
	}
	return u, nil
}

func (s *memoryUserStore) Create(_ context.Context, u *models.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *memoryUserStore) CreateMany(_ context.Context, users []*models.User) error {
	for _, u := range users {
		s.users[u.ID] = u
	}
	return nil
}

type noRoles struct{}

func (noRoles) Exists(context.Context, int64) (bool, error) { return false, nil }

// failingRepresent renders nothing, so the handler has to surface the error.
type failingRepresent struct {
	*serializers.UserSerializer
}

func (failingRepresent) Represent(context.Context, *models.User) (any, error) {
	return nil, errors.New("render user: boom")
}

func TestCreateUsers(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		failRender bool
		wantStatus int
		wantUsers  int
	}{
		{
			name:       "single user",
			body:       `{"id": 1, "name": "lemon", "discriminator": 1}`,
			wantStatus: http.StatusCreated,
			wantUsers:  1,
		},
		{
			name:       "batch of users",
			body:       `[{"id": 1, "name": "lemon", "discriminator": 1}, {"id": 2, "name": "lime", "discriminator": 2}]`,
			wantStatus: http.StatusCreated,
			wantUsers:  2,
		},
		{
			name:       "invalid user",
			body:       `{"id": 1, "discriminator": 1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "single user render failure",
			body:       `{"id": 1, "name": "lemon", "discriminator": 1}`,
			failRender: true,
			wantStatus: http.StatusInternalServerError,
			wantUsers:  1,
		},
		{
			name:       "batch render failure",
			body:       `[{"id": 1, "name": "lemon", "discriminator": 1}]`,
			failRender: true,
			wantStatus: http.StatusInternalServerError,
			wantUsers:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryUserStore()
			var s UserBatchSerializer = serializers.NewUserSerializer(noRoles{}, store)
			if tt.failRender {
				s = failingRepresent{serializers.NewUserSerializer(noRoles{}, store)}
			}

			app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
			app.Post("/users", CreateUsers(s))

			status, body := doRequest(t, app, http.MethodPost, "/users", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Len(t, store.users, tt.wantUsers)
			if tt.failRender {
				assert.Equal(t, map[string]any{"detail": "Internal Server Error"}, body)
			}
		})
	}
}
