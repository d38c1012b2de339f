package server

import (
	"log/slog"
	"net/http"

	"github.com/vaibhv02/mini-task-management-api/internal/server/handlers"
	"github.com/vaibhv02/mini-task-management-api/internal/server/middleware"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
	"github.com/vaibhv02/mini-task-management-api/internal/server/token"
)

// Storage объединяет хранилища, необходимые серверу
type Storage interface {
	storage.UserStorage
	storage.TaskStorage
}

// NewRouter собирает HTTP роутер со всеми эндпоинтами и middleware.
// Маршруты /tasks/ защищены auth middleware, /auth/* и /health открыты.
func NewRouter(logger *slog.Logger, store Storage, tokens *token.Service) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, tokens)
	taskHandler := handlers.NewTaskHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger)

	authRequired := middleware.Auth(logger, tokens, store)

	mux := http.NewServeMux()

	// Открытые эндпоинты
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// Защищенные эндпоинты задач
	mux.Handle("POST /tasks/{$}", authRequired(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /tasks/{$}", authRequired(http.HandlerFunc(taskHandler.List)))
	mux.Handle("GET /tasks/{id}", authRequired(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("PUT /tasks/{id}", authRequired(http.HandlerFunc(taskHandler.Update)))
	mux.Handle("DELETE /tasks/{id}", authRequired(http.HandlerFunc(taskHandler.Delete)))

	// Внешние middleware применяются ко всем запросам
	return middleware.Recovery(logger)(middleware.Logging(logger)(mux))
}
