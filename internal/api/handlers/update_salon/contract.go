package update_salon

import (
	"context"

	salonModels "github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	Update(ctx context.Context, id string, req *salonModels.UpdateSalonRequest) (*salonModels.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
