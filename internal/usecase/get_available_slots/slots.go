package get_available_slots

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// isSlotAvailable проверяет, свободен ли интервал [start, end) у мастера
// Фильтрует записи по мастеру внутри - вызывающий код не обязан передавать
// предварительно отфильтрованную коллекцию
//
// Записи учитываются НЕЗАВИСИМО от статуса: отменённая запись тоже блокирует
// интервал. Это сознательно сохранённое поведение, см. DESIGN.md
//
// Пересечение есть, если:
// - начало кандидата попадает внутрь существующей записи [aStart, aEnd), или
// - конец кандидата попадает внутрь (aStart, aEnd], или
// - кандидат целиком содержит существующую запись
// Касание границ пересечением не считается:
// слот 11:00-11:30 и запись 11:30-12:00 не конфликтуют
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
// День без настроенного окна считается полностью нерабочим
// Обе границы окна включительные: 09:00 и 18:00 для окна 09:00-18:00 внутри
func isWithinWorkingHours(instant time.Time, workingHours domain.WorkingHours) bool {
	dayRange := workingHours.ForWeekday(instant.Weekday())
	if dayRange == nil {
		return false
	}

	timeOfDay := types.NewTimeString(instant)
	return !timeOfDay.IsBefore(dayRange.Start) && !timeOfDay.IsAfter(dayRange.End)
}

// generateAvailableSlots перечисляет свободные слоты мастера на дату
// Окно дня строится из рабочих часов мастера; шаг - slotDuration минут
//
// Границей служит только НАЧАЛО слота: слот, начавшийся до конца окна,
// попадает в выдачу, даже если его конец выходит за рабочие часы
// (слот 11:30+30мин при окне до 12:00 включается). Не менять без
// согласования - это меняет результаты доступности
func generateAvailableSlots(
	master *domain.Master,
	date time.Time,
	appointments []*domain.Appointment,
	slotDuration int,
) ([]time.Time, error) {
	dayRange := master.WorkingHours.ForWeekday(date.Weekday())
	if dayRange == nil {
		return []time.Time{}, nil
	}

	windowStart, err := dayRange.Start.At(date)
	if err != nil {
		return nil, err
	}
	windowEnd, err := dayRange.End.At(date)
	if err != nil {
		return nil, err
	}

	slots := make([]time.Time, 0)
	step := time.Duration(slotDuration) * time.Minute

	for current := windowStart; current.Before(windowEnd); current = current.Add(step) {
		slotEnd := computeEnd(current, slotDuration)
		if isSlotAvailable(appointments, master.ID, current, slotEnd) {
			slots = append(slots, current)
		}
	}

	return slots, nil
}

// computeEnd возвращает конец интервала: start + durationMinutes минут
// Знак длительности не проверяется - отрицательная длительность даст
// конец раньше начала, за корректность отвечает вызывающий код
func computeEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}
