package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию сервера, загружаемую из переменных окружения.
// Загружается один раз при старте процесса и дальше не меняется.
type Config struct {
	// ListenAddr адрес, на котором слушает HTTP сервер
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// DatabaseURL путь к файлу SQLite базы данных
	DatabaseURL string `env:"DATABASE_URL" envDefault:"tasks.db"`

	// SecretKey ключ подписи JWT токенов, обязательный
	SecretKey string `env:"SECRET_KEY,required"`

	// Algorithm алгоритм подписи JWT (HS256, HS384, HS512)
	Algorithm string `env:"ALGORITHM" envDefault:"HS256"`

	// AccessTokenExpireMinutes время жизни access token в минутах
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	// LogLevel уровень логирования (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load парсит конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AccessTokenTTL возвращает время жизни access token как time.Duration
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// SlogLevel переводит LogLevel в slog.Level, по умолчанию Info
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
