package get_appointment

import (
	"context"

	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id string, actor appointmentModels.Actor) (*appointmentModels.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
