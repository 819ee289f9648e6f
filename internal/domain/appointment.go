package domain

import "time"

// AppointmentStatus статус записи к мастеру
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no-show"
)

// AllStatuses все допустимые статусы записи
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// Valid проверяет, что статус принадлежит известному множеству
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// Appointment запись клиента к мастеру
// Интервал [Start, End) полуоткрытый: Start < End
type Appointment struct {
	ID        string
	MasterID  string
	ClientID  string
	SalonID   string
	ServiceID string
	Start     time.Time
	End       time.Time
	Status    AppointmentStatus
	Notes     *string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись в активном состоянии
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled проверяет, можно ли отменить запись
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeUpdated проверяет, можно ли изменить запись
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// AppointmentsFilter фильтр для выборки записей из хранилища
type AppointmentsFilter struct {
	SalonID   *string             // Фильтр по салону (опционально)
	MasterIDs []string            // Фильтр по мастерам (пустой список = все мастера)
	Statuses  []AppointmentStatus // Фильтр по статусам (пустой список = все статусы)
	From      *time.Time          // Начало окна по Start (включительно, опционально)
	To        *time.Time          // Конец окна по Start (исключительно, опционально)
}
