package domain

import "time"

// ViewMode режим отображения календаря
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Valid проверяет, что режим принадлежит известному множеству
func (m ViewMode) Valid() bool {
	switch m {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	default:
		return false
	}
}

// CalendarView видимое окно календаря
type CalendarView struct {
	Mode         ViewMode
	SelectedDate time.Time
	SalonID      *string  // Ограничение по салону (опционально)
	MasterIDs    []string // Ограничение по мастерам (опционально)
}

// FilterSelection выбранные фильтры отображения календаря
// Пустой компонент означает отсутствие ограничения по этому измерению
type FilterSelection struct {
	SalonID   *string
	MasterIDs []string
	Statuses  []AppointmentStatus
}
