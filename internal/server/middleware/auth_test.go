package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
	"github.com/vaibhv02/mini-task-management-api/internal/server/handlers"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
	"github.com/vaibhv02/mini-task-management-api/internal/server/token"
)

// mockUserStorage is a minimal UserStorage for middleware tests
type mockUserStorage struct {
	users map[string]*models.User // email -> User
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func setupAuthTest(t *testing.T) (*token.Service, *mockUserStorage, http.Handler) {
	t.Helper()

	tokens, err := token.NewService("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	users := &mockUserStorage{users: map[string]*models.User{
		"a@x.com": {ID: "user-1", Email: "a@x.com", IsActive: true},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Защищенный handler возвращает email пользователя из контекста
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := handlers.UserFromContext(r.Context())
		require.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user.Email))
	})

	return tokens, users, Auth(logger, tokens, users)(next)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, _, handler := setupAuthTest(t)

	tok, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", w.Body.String())
}

func TestAuth_Unauthorized(t *testing.T) {
	tokens, _, handler := setupAuthTest(t)

	expired, err := tokens.IssueWithTTL("a@x.com", -time.Minute)
	require.NoError(t, err)

	unknownSubject, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "unknown subject", header: "Bearer " + unknownSubject},
	}

	// Все причины отказа должны давать одинаковый ответ
	var firstBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

			if firstBody == "" {
				firstBody = w.Body.String()
			} else {
				assert.Equal(t, firstBody, w.Body.String())
			}
		})
	}
}
