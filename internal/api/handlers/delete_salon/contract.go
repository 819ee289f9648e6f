package delete_salon

import (
	"context"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

type SalonService interface {
	Delete(ctx context.Context, id string, role domain.UserRole) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
