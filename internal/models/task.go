package models

import "time"

// Task представляет задачу пользователя
type Task struct {
	ID          string    `json:"id"`           // UUID задачи
	OwnerID     string    `json:"owner_id"`     // ID владельца, не меняется после создания
	Title       string    `json:"title"`        // название, непустое
	Description string    `json:"description"`  // описание, опционально
	DueDate     time.Time `json:"due_date"`     // срок выполнения, строго в будущем
	IsCompleted bool      `json:"is_completed"` // выполнена ли задача
	CreatedAt   time.Time `json:"created_at"`   // время создания
	UpdatedAt   time.Time `json:"updated_at"`   // время последнего обновления
}

// TaskUpdate описывает частичное обновление задачи.
// nil-поля не затрагиваются при применении.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	IsCompleted *bool
}

// TaskFilter задает параметры выборки списка задач
type TaskFilter struct {
	Completed *bool // фильтр по статусу выполнения, nil - без фильтра
	Skip      int   // смещение от начала списка
	Limit     int   // максимальное количество задач в ответе
}
