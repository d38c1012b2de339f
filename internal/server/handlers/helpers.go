package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vaibhv02/mini-task-management-api/internal/models"
	"github.com/vaibhv02/mini-task-management-api/pkg/api"
)

// contextKey тип для ключей контекста запроса
type contextKey string

// UserKey ключ контекста, под которым middleware сохраняет
// аутентифицированного пользователя
const UserKey contextKey = "user"

// UserFromContext извлекает аутентифицированного пользователя из контекста.
// Возвращает nil, если auth middleware не отработал.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendUnauthorized отправляет 401 с challenge заголовком.
// Тело одинаково для всех причин отказа.
func sendUnauthorized(logger *slog.Logger, w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	sendError(logger, w, message, http.StatusUnauthorized)
}
