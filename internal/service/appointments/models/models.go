package models

import (
	"errors"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Actor пользователь, выполняющий операцию
// MasterID заполнен только для пользователей с ролью master
type Actor struct {
	UserID   string
	Role     domain.UserRole
	MasterID *string
}

// MasterIDOrEmpty возвращает ID мастера или пустую строку
func (a Actor) MasterIDOrEmpty() string {
	if a.MasterID == nil {
		return ""
	}
	return *a.MasterID
}

// Request модели

// GetCalendarRequest запрос на получение записей для календарного представления
type GetCalendarRequest struct {
	Actor        Actor
	Mode         string                     // day | week | month
	SelectedDate time.Time                  // любая дата внутри окна
	SalonID      *string                    // Фильтр по салону (опционально)
	MasterIDs    []string                   // Фильтр по мастерам (пустой список = все мастера)
	Statuses     []domain.AppointmentStatus // Фильтр по статусам (пустой список = все статусы)
}

// UpdateAppointmentRequest запрос на частичное обновление записи
type UpdateAppointmentRequest struct {
	Actor           Actor
	MasterID        *string    `json:"masterId,omitempty"`
	ServiceID       *string    `json:"serviceId,omitempty"`
	Start           *time.Time `json:"start,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// RescheduleRequested возвращает true, если запрос меняет время или мастера
func (r *UpdateAppointmentRequest) RescheduleRequested() bool {
	return r.MasterID != nil || r.Start != nil || r.DurationMinutes != nil
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Actor Actor
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Actor  Actor
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        string    `json:"id"`
	MasterID  string    `json:"masterId"`
	ClientID  string    `json:"clientId"`
	SalonID   string    `json:"salonId"`
	ServiceID string    `json:"serviceId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:        a.ID,
		MasterID:  a.MasterID,
		ClientID:  a.ClientID,
		SalonID:   a.SalonID,
		ServiceID: a.ServiceID,
		Start:     a.Start,
		End:       a.End,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if ar := FromDomainAppointment(a); ar != nil {
			resp.Appointments = append(resp.Appointments, *ar)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
