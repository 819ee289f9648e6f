package appointments

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// isSlotAvailableExcluding проверяет, свободен ли интервал [start, end) у мастера,
// игнорируя запись excludeID - при переносе запись не конфликтует сама с собой
//
// Записи учитываются НЕЗАВИСИМО от статуса: отменённая запись тоже блокирует
// интервал. Касание границ пересечением не считается
func isSlotAvailableExcluding(appointments []*domain.Appointment, masterID, excludeID string, start, end time.Time) bool {
	for _, app := range appointments {
		if app.MasterID != masterID || app.ID == excludeID {
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
// День без настроенного окна считается полностью нерабочим
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
