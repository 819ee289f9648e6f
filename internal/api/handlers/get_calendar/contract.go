package get_calendar

import (
	"context"

	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetCalendar(ctx context.Context, req *appointmentModels.GetCalendarRequest) (*appointmentModels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
