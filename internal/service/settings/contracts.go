package settings

import (
	"context"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек пользователей
type SettingsRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
