package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
	"github.com/vaibhv02/mini-task-management-api/internal/validation"
	"github.com/vaibhv02/mini-task-management-api/pkg/api"
)

// DefaultListLimit ограничивает размер списка задач, если limit не задан
const DefaultListLimit = 100

// TaskHandler обрабатывает CRUD запросы по задачам.
// Все операции выполняются от имени пользователя из контекста запроса.
type TaskHandler struct {
	logger *slog.Logger
	tasks  storage.TaskStorage
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(logger *slog.Logger, tasks storage.TaskStorage) *TaskHandler {
	return &TaskHandler{
		logger: logger,
		tasks:  tasks,
	}
}

// Create обрабатывает POST /tasks/
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := UserFromContext(ctx)

	var req api.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create task request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация полей
	if err := validation.ValidateTitle(req.Title); err != nil {
		h.logger.WarnContext(ctx, "invalid task title", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDueDate(req.DueDate, time.Now()); err != nil {
		h.logger.WarnContext(ctx, "invalid due date", slog.Time("due_date", req.DueDate), slog.Any("error", err))
		sendError(h.logger, w, "Due date must be in the future", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.New().String(),
		OwnerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.tasks.CreateTask(ctx, task); err != nil {
		h.logger.ErrorContext(ctx, "failed to create task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task created successfully",
		slog.String("task_id", task.ID),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, taskToResponse(task), http.StatusOK)
}

// List обрабатывает GET /tasks/
// Query параметры: skip, limit, completed
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := UserFromContext(ctx)

	filter, err := parseTaskFilter(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid list query", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := h.tasks.ListTasks(ctx, user.ID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tasks listed",
		slog.String("user_id", user.ID),
		slog.Int("count", len(tasks)))

	resp := make([]api.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := UserFromContext(ctx)
	taskID := r.PathValue("id")

	task, err := h.tasks.GetTask(ctx, user.ID, taskID)
	if err != nil {
		h.handleTaskError(w, r, err, taskID, user.ID)
		return
	}

	sendJSON(h.logger, w, taskToResponse(task), http.StatusOK)
}

// Update обрабатывает PUT /tasks/{id}
// Применяются только поля, присутствующие в теле запроса
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := UserFromContext(ctx)
	taskID := r.PathValue("id")

	var req api.TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update task request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем только присутствующие поля
	if req.Title != nil {
		if err := validation.ValidateTitle(*req.Title); err != nil {
			h.logger.WarnContext(ctx, "invalid task title", slog.Any("error", err))
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.DueDate != nil {
		if err := validation.ValidateDueDate(*req.DueDate, time.Now()); err != nil {
			h.logger.WarnContext(ctx, "invalid due date", slog.Time("due_date", *req.DueDate), slog.Any("error", err))
			sendError(h.logger, w, "Due date must be in the future", http.StatusBadRequest)
			return
		}
	}

	update := &models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	}

	task, err := h.tasks.UpdateTask(ctx, user.ID, taskID, update)
	if err != nil {
		h.handleTaskError(w, r, err, taskID, user.ID)
		return
	}

	h.logger.InfoContext(ctx, "task updated successfully",
		slog.String("task_id", taskID),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, taskToResponse(task), http.StatusOK)
}

// Delete обрабатывает DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := UserFromContext(ctx)
	taskID := r.PathValue("id")

	if err := h.tasks.DeleteTask(ctx, user.ID, taskID); err != nil {
		h.handleTaskError(w, r, err, taskID, user.ID)
		return
	}

	h.logger.InfoContext(ctx, "task deleted successfully",
		slog.String("task_id", taskID),
		slog.String("user_id", user.ID))

	w.WriteHeader(http.StatusNoContent)
}

// handleTaskError переводит ошибки хранилища в HTTP ответ.
// Чужая задача и несуществующая задача дают одинаковый 404.
func (h *TaskHandler) handleTaskError(w http.ResponseWriter, r *http.Request, err error, taskID, userID string) {
	ctx := r.Context()

	if errors.Is(err, storage.ErrTaskNotFound) {
		h.logger.WarnContext(ctx, "task not found",
			slog.String("task_id", taskID),
			slog.String("user_id", userID))
		sendError(h.logger, w, "Task not found", http.StatusNotFound)
		return
	}

	h.logger.ErrorContext(ctx, "task storage error", slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// parseTaskFilter разбирает query параметры skip, limit, completed
func parseTaskFilter(r *http.Request) (models.TaskFilter, error) {
	filter := models.TaskFilter{
		Skip:  0,
		Limit: DefaultListLimit,
	}

	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			return filter, errors.New("skip must be a non-negative integer")
		}
		filter.Skip = skip
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, errors.New("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	if v := q.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("completed must be a boolean")
		}
		filter.Completed = &completed
	}

	return filter, nil
}

// taskToResponse переводит модель задачи в wire формат
func taskToResponse(task *models.Task) api.TaskResponse {
	return api.TaskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
