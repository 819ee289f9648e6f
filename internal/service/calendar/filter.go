package calendar

import (
	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// FilteredAppointments применяет выбранные фильтры к списку записей
// Чистая функция: вход не мутируется, порядок записей сохраняется
//
// Фильтры конъюнктивные: запись проходит, если удовлетворяет всем
// непустым компонентам выбора. Пустой компонент (nil салон, пустые
// списки мастеров и статусов) не ограничивает ничего - при полностью
// пустом выборе результат содержит все записи входа
func FilteredAppointments(appointments []*domain.Appointment, selection domain.FilterSelection) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))

	for _, app := range appointments {
		if app == nil {
			continue
		}
		if selection.SalonID != nil && app.SalonID != *selection.SalonID {
			continue
		}
		if len(selection.MasterIDs) > 0 && !containsString(selection.MasterIDs, app.MasterID) {
			continue
		}
		if len(selection.Statuses) > 0 && !containsStatus(selection.Statuses, app.Status) {
			continue
		}
		result = append(result, app)
	}

	return result
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsStatus(list []domain.AppointmentStatus, v domain.AppointmentStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
