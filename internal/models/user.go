package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`            // UUID пользователя
	Email        string    `json:"email"`         // уникальный email
	PasswordHash string    `json:"-"`             // bcrypt хеш пароля, наружу не отдается
	IsActive     bool      `json:"is_active"`     // всегда true в текущей версии
	CreatedAt    time.Time `json:"created_at"`    // время создания
}
