package storage

import (
	"context"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
)

// TaskStorage defines interface for owner-scoped task persistence.
// Every read and write is filtered by the owner: a task that exists but
// belongs to another user behaves exactly like a missing task.
type TaskStorage interface {
	// CreateTask persists a new task
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasks retrieves tasks of the owner in insertion order,
	// optionally filtered by completion state, with offset and limit.
	// Returns empty slice if no tasks match.
	ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]*models.Task, error)

	// GetTask retrieves a single task of the owner
	// Returns ErrTaskNotFound if it doesn't exist or has another owner
	GetTask(ctx context.Context, ownerID, taskID string) (*models.Task, error)

	// UpdateTask applies non-nil fields of update to the owner's task and
	// refreshes updated_at. Returns the updated task.
	// Returns ErrTaskNotFound if it doesn't exist or has another owner
	UpdateTask(ctx context.Context, ownerID, taskID string, update *models.TaskUpdate) (*models.Task, error)

	// DeleteTask permanently removes the owner's task
	// Returns ErrTaskNotFound if it doesn't exist or has another owner
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
