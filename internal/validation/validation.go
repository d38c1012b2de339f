package validation

import (
	"fmt"
	"regexp"
	"time"
)

// EmailPattern определяет допустимый формат email
// Упрощенная проверка: local@domain.tld без пробелов
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MaxPasswordLen максимальная длина пароля в байтах (ограничение bcrypt)
	MaxPasswordLen = 72
)

// ValidateEmail проверяет, что email непустой и соответствует формату.
// Регистр не нормализуется: email хранится как есть.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	return nil
}

// ValidateTitle проверяет, что название задачи непустое
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

// ValidateDueDate проверяет, что срок выполнения строго в будущем
// относительно переданного момента времени
func ValidateDueDate(dueDate, now time.Time) error {
	if !dueDate.After(now) {
		return fmt.Errorf("due date must be in the future")
	}
	return nil
}
