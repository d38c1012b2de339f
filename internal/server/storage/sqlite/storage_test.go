package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
)

// setupTestStorage создает in-memory storage для тестов
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close storage: %v", err)
		}
	}

	return s, cleanup
}

// createTestUser создает пользователя для тестов задач
func createTestUser(t *testing.T, s *Storage, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "hash123",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))

	return user
}

// createTestTask создает задачу для указанного владельца
func createTestTask(t *testing.T, s *Storage, ownerID, title string) *models.Task {
	t.Helper()

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: "test description",
		DueDate:     now.Add(24 * time.Hour),
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.CreateTask(context.Background(), task))

	return task
}
