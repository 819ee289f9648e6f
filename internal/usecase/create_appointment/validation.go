package create_appointment

import (
	"fmt"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.MasterID == "" {
		return fmt.Errorf("%w: masterID is required", ErrInvalidInput)
	}

	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isSlotAvailable проверяет, свободен ли интервал [start, end) у мастера
// Записи учитываются независимо от статуса, касание границ конфликтом не считается
func isSlotAvailable(appointments []*domain.Appointment, masterID string, start, end time.Time) bool {
	for _, app := range appointments {
		if app.MasterID != masterID {
			continue
		}

		overlaps := (!start.Before(app.Start) && start.Before(app.End)) ||
			(end.After(app.Start) && !end.After(app.End)) ||
			(!start.After(app.Start) && !end.Before(app.End))

		if overlaps {
			return false
		}
	}

	return true
}

// isWithinWorkingHours проверяет, попадает ли момент времени в рабочие часы
// Обе границы окна включительные
func isWithinWorkingHours(instant time.Time, workingHours domain.WorkingHours) bool {
	dayRange := workingHours.ForWeekday(instant.Weekday())
	if dayRange == nil {
		return false
	}

	timeOfDay := types.NewTimeString(instant)
	return !timeOfDay.IsBefore(dayRange.Start) && !timeOfDay.IsAfter(dayRange.End)
}

// computeEnd возвращает конец интервала: start + durationMinutes минут
func computeEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}
