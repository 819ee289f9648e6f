package salons

import (
	"context"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	salonRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/salon"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	List(ctx context.Context) ([]*domain.Salon, error)
	Update(ctx context.Context, id string, params salonRepo.UpdateParams) (*domain.Salon, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
