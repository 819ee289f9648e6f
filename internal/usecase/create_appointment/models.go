package create_appointment

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	SalonID   string    // ID салона
	MasterID  string    // ID мастера
	ClientID  string    // ID клиента
	ServiceID string    // ID услуги (длительность записи берётся из услуги)
	Start     time.Time // Начало записи
	Notes     *string   // Комментарий (опционально)
	CreatedBy string    // ID пользователя, создающего запись
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string                   `json:"id"`
	SalonID   string                   `json:"salonId"`
	MasterID  string                   `json:"masterId"`
	ClientID  string                   `json:"clientId"`
	ServiceID string                   `json:"serviceId"`
	Start     time.Time                `json:"start"`
	End       time.Time                `json:"end"`
	Status    domain.AppointmentStatus `json:"status"`
	Notes     *string                  `json:"notes,omitempty"`
	CreatedBy string                   `json:"createdBy"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// fromDomain конвертирует domain модель в ответ use case
func fromDomain(a *domain.Appointment) *Response {
	return &Response{
		ID:        a.ID,
		SalonID:   a.SalonID,
		MasterID:  a.MasterID,
		ClientID:  a.ClientID,
		ServiceID: a.ServiceID,
		Start:     a.Start,
		End:       a.End,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
