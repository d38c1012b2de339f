package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
)

func TestTaskStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")
	task := createTestTask(t, s, owner.ID, "Test Task")

	retrieved, err := s.GetTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, owner.ID, retrieved.OwnerID)
	assert.Equal(t, "Test Task", retrieved.Title)
	assert.Equal(t, "test description", retrieved.Description)
	assert.False(t, retrieved.IsCompleted)
	assert.WithinDuration(t, task.DueDate, retrieved.DueDate, time.Second)
}

func TestTaskStorage_GetTask_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")

	_, err := s.GetTask(ctx, owner.ID, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestTaskStorage_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userA := createTestUser(t, s, "a@example.com")
	userB := createTestUser(t, s, "b@example.com")

	taskB := createTestTask(t, s, userB.ID, "B's task")

	// Чужая задача неотличима от несуществующей
	_, err := s.GetTask(ctx, userA.ID, taskB.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	title := "hijacked"
	_, err = s.UpdateTask(ctx, userA.ID, taskB.ID, &models.TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	err = s.DeleteTask(ctx, userA.ID, taskB.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	// Задача владельца не пострадала
	retrieved, err := s.GetTask(ctx, userB.ID, taskB.ID)
	require.NoError(t, err)
	assert.Equal(t, "B's task", retrieved.Title)
}

func TestTaskStorage_ListTasks(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")
	other := createTestUser(t, s, "other@example.com")

	task1 := createTestTask(t, s, owner.ID, "first")
	task2 := createTestTask(t, s, owner.ID, "second")
	task3 := createTestTask(t, s, owner.ID, "third")
	createTestTask(t, s, other.ID, "foreign")

	// Отмечаем вторую задачу выполненной
	done := true
	_, err := s.UpdateTask(ctx, owner.ID, task2.ID, &models.TaskUpdate{IsCompleted: &done})
	require.NoError(t, err)

	t.Run("returns only owner tasks in insertion order", func(t *testing.T) {
		tasks, err := s.ListTasks(ctx, owner.ID, models.TaskFilter{Limit: 100})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, task1.ID, tasks[0].ID)
		assert.Equal(t, task2.ID, tasks[1].ID)
		assert.Equal(t, task3.ID, tasks[2].ID)
	})

	t.Run("filter completed true", func(t *testing.T) {
		completed := true
		tasks, err := s.ListTasks(ctx, owner.ID, models.TaskFilter{Completed: &completed, Limit: 100})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, task2.ID, tasks[0].ID)
	})

	t.Run("filter completed false", func(t *testing.T) {
		completed := false
		tasks, err := s.ListTasks(ctx, owner.ID, models.TaskFilter{Completed: &completed, Limit: 100})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
	})

	t.Run("skip and limit", func(t *testing.T) {
		tasks, err := s.ListTasks(ctx, owner.ID, models.TaskFilter{Skip: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, task2.ID, tasks[0].ID)
	})

	t.Run("empty result", func(t *testing.T) {
		tasks, err := s.ListTasks(ctx, owner.ID, models.TaskFilter{Skip: 10, Limit: 100})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestTaskStorage_UpdateTask_Partial(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")
	task := createTestTask(t, s, owner.ID, "original title")

	// Обновляем только is_completed
	done := true
	updated, err := s.UpdateTask(ctx, owner.ID, task.ID, &models.TaskUpdate{IsCompleted: &done})
	require.NoError(t, err)

	// Остальные поля не изменились
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "original title", updated.Title)
	assert.Equal(t, task.Description, updated.Description)
	assert.WithinDuration(t, task.DueDate, updated.DueDate, time.Second)

	// updated_at продвинулся вперед
	assert.True(t, !updated.UpdatedAt.Before(task.UpdatedAt))
}

func TestTaskStorage_UpdateTask_AllFields(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")
	task := createTestTask(t, s, owner.ID, "before")

	title := "after"
	description := "new description"
	dueDate := time.Now().UTC().Add(48 * time.Hour)
	done := true

	updated, err := s.UpdateTask(ctx, owner.ID, task.ID, &models.TaskUpdate{
		Title:       &title,
		Description: &description,
		DueDate:     &dueDate,
		IsCompleted: &done,
	})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new description", updated.Description)
	assert.WithinDuration(t, dueDate, updated.DueDate, time.Second)
	assert.True(t, updated.IsCompleted)

	// owner_id неизменяем
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestTaskStorage_DeleteTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, s, "owner@example.com")
	task := createTestTask(t, s, owner.ID, "to delete")

	err := s.DeleteTask(ctx, owner.ID, task.ID)
	require.NoError(t, err)

	// Удаление безвозвратно
	_, err = s.GetTask(ctx, owner.ID, task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	// Повторное удаление - NotFound
	err = s.DeleteTask(ctx, owner.ID, task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}
