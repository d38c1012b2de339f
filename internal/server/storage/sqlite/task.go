package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
)

// CreateTask persists a new task
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, owner_id, title, description, due_date, is_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.DueDate,
		boolToInt(task.IsCompleted),
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// ListTasks retrieves tasks of the owner in insertion order
// Returns empty slice if no tasks match the filter
func (s *Storage) ListTasks(ctx context.Context, ownerID string, filter models.TaskFilter) ([]*models.Task, error) {
	query := `
		SELECT id, owner_id, title, description, due_date, is_completed, created_at, updated_at
		FROM tasks
		WHERE owner_id = ?
	`
	args := []interface{}{ownerID}

	if filter.Completed != nil {
		query += " AND is_completed = ?"
		args = append(args, boolToInt(*filter.Completed))
	}

	// rowid сохраняет порядок вставки
	query += " ORDER BY rowid LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Skip)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return s.scanTasks(rows)
}

// GetTask retrieves a single task of the owner
// Returns ErrTaskNotFound if it doesn't exist or has another owner
func (s *Storage) GetTask(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	query := `
		SELECT id, owner_id, title, description, due_date, is_completed, created_at, updated_at
		FROM tasks
		WHERE id = ? AND owner_id = ?
	`

	task := &models.Task{}
	var isCompleted int

	err := s.db.QueryRowContext(ctx, query, taskID, ownerID).Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&isCompleted,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task.IsCompleted = intToBool(isCompleted)

	return task, nil
}

// UpdateTask applies non-nil fields of update to the owner's task.
// Ownership check and mutation execute as a single UPDATE statement,
// so there is no window between check and write.
func (s *Storage) UpdateTask(ctx context.Context, ownerID, taskID string, update *models.TaskUpdate) (*models.Task, error) {
	var sets []string
	var args []interface{}

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *update.DueDate)
	}
	if update.IsCompleted != nil {
		sets = append(sets, "is_completed = ?")
		args = append(args, boolToInt(*update.IsCompleted))
	}

	// updated_at обновляется всегда, даже для пустого частичного обновления
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND owner_id = ?"
	args = append(args, taskID, ownerID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrTaskNotFound
	}

	return s.GetTask(ctx, ownerID, taskID)
}

// DeleteTask permanently removes the owner's task
// Returns ErrTaskNotFound if it doesn't exist or has another owner
func (s *Storage) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// scanTasks is a helper function to scan multiple tasks from rows
func (s *Storage) scanTasks(rows *sql.Rows) ([]*models.Task, error) {
	tasks := []*models.Task{}

	for rows.Next() {
		task := &models.Task{}
		var isCompleted int

		err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Description,
			&task.DueDate,
			&isCompleted,
			&task.CreatedAt,
			&task.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		task.IsCompleted = intToBool(isCompleted)

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}
