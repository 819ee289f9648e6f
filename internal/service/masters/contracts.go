package masters

import (
	"context"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
)

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	Create(ctx context.Context, master *domain.Master) (*domain.Master, error)
	GetByID(ctx context.Context, id string) (*domain.Master, error)
	ListBySalon(ctx context.Context, salonID string) ([]*domain.Master, error)
	Update(ctx context.Context, id string, params masterRepo.UpdateParams) (*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
