package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaibhv02/mini-task-management-api/internal/server/handlers"
	"github.com/vaibhv02/mini-task-management-api/internal/server/storage"
	"github.com/vaibhv02/mini-task-management-api/internal/server/token"
	"github.com/vaibhv02/mini-task-management-api/pkg/api"
)

// Auth создает middleware для резолва идентичности по bearer токену.
// Токен проверяется, затем subject (email) резолвится в пользователя.
// Все причины отказа (нет заголовка, битый токен, истекший токен,
// неизвестный subject) дают один и тот же 401 ответ.
func Auth(logger *slog.Logger, tokens *token.Service, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header")
				unauthorized(logger, w)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.WarnContext(ctx, "invalid Authorization header format")
				unauthorized(logger, w)
				return
			}

			// Валидируем токен
			subject, err := tokens.Verify(parts[1])
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				unauthorized(logger, w)
				return
			}

			// Резолвим subject в пользователя
			user, err := users.GetUserByEmail(ctx, subject)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					logger.WarnContext(ctx, "token subject not found")
					unauthorized(logger, w)
					return
				}
				logger.ErrorContext(ctx, "failed to resolve user", slog.Any("error", err))
				serverError(logger, w)
				return
			}

			// Деактивация пользователей пока не поддерживается,
			// is_active всегда true
			_ = user.IsActive

			logger.DebugContext(ctx, "user authenticated",
				slog.String("user_id", user.ID),
				slog.String("email", user.Email))

			// Передаем запрос дальше с пользователем в контексте
			ctx = context.WithValue(ctx, handlers.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет единый 401 ответ с challenge заголовком
func unauthorized(logger *slog.Logger, w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(logger, w, "Could not validate credentials", http.StatusUnauthorized)
}

// serverError отправляет непрозрачный 500 ответ
func serverError(logger *slog.Logger, w http.ResponseWriter) {
	writeJSONError(logger, w, "internal server error", http.StatusInternalServerError)
}

// writeJSONError отправляет JSON ошибку в формате api.ErrorResponse
func writeJSONError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
