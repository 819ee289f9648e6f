package update_appointment

import (
	"context"

	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	Update(ctx context.Context, id string, req *appointmentModels.UpdateAppointmentRequest) (*appointmentModels.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
