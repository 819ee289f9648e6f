package get_salon_masters

import (
	"context"

	masterModels "github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

type MasterService interface {
	ListBySalon(ctx context.Context, salonID string) (*masterModels.MasterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
