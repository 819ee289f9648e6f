package list_salons

import (
	"context"

	salonModels "github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	List(ctx context.Context) (*salonModels.SalonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
