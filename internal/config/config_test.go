package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "tasks.db", cfg.DatabaseURL)
	assert.Equal(t, "test-secret", cfg.SecretKey)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingSecretKey(t *testing.T) {
	// t.Setenv регистрирует восстановление, после чего переменную можно снять
	t.Setenv("SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("SECRET_KEY"))

	// required поле без значения — ошибка парсинга
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "/var/lib/app/tasks.db")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/var/lib/app/tasks.db", cfg.DatabaseURL)
	assert.Equal(t, "HS512", cfg.Algorithm)
	assert.Equal(t, 60, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestAccessTokenTTL(t *testing.T) {
	cfg := &Config{AccessTokenExpireMinutes: 45}
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenTTL())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}
