package get_salon

import (
	"context"

	salonModels "github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	GetByID(ctx context.Context, id string) (*salonModels.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
