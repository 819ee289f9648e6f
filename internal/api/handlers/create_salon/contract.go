package create_salon

import (
	"context"

	salonModels "github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	Create(ctx context.Context, req *salonModels.CreateSalonRequest) (*salonModels.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
