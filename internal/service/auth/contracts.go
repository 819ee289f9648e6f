package auth

import (
	"context"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// MasterRepository интерфейс репозитория мастеров
// Нужен для привязки ID мастера к токену пользователя с ролью master
type MasterRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
