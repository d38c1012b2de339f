package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close storage: %v", err)
		}
	})

	return s
}

func TestSaveAndGetSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	session := &storage.Session{
		Email:       "user@example.com",
		AccessToken: "test-token",
		ExpiresAt:   time.Now().Add(15 * time.Minute).Unix(),
	}

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.Equal(t, session.ExpiresAt, got.ExpiresAt)
	assert.False(t, got.Expired())
}

func TestSaveSession_Replaces(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{
		Email:       "old@example.com",
		AccessToken: "old-token",
	}))
	require.NoError(t, s.SaveSession(ctx, &storage.Session{
		Email:       "new@example.com",
		AccessToken: "new-token",
	}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "new-token", got.AccessToken)
}

func TestGetSession_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{
		Email:       "user@example.com",
		AccessToken: "test-token",
	}))

	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, s.DeleteSession(ctx))
}

func TestSessionExpired(t *testing.T) {
	expired := &storage.Session{ExpiresAt: time.Now().Add(-time.Minute).Unix()}
	assert.True(t, expired.Expired())

	valid := &storage.Session{ExpiresAt: time.Now().Add(time.Minute).Unix()}
	assert.False(t, valid.Expired())
}
