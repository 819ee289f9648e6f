package create_appointment

import (
	"time"

	createAppointment "github.com/olhgfsaw/salon-booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest модель HTTP запроса на создание записи
type CreateAppointmentRequest struct {
	SalonID   string    `json:"salonId"`
	MasterID  string    `json:"masterId"`
	ClientID  string    `json:"clientId,omitempty"` // По умолчанию - текущий пользователь
	ServiceID string    `json:"serviceId"`
	Start     time.Time `json:"start"`
	Notes     *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
// userID - текущий аутентифицированный пользователь
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID string) *createAppointment.Request {
	clientID := r.ClientID
	if clientID == "" {
		clientID = userID
	}

	return &createAppointment.Request{
		SalonID:   r.SalonID,
		MasterID:  r.MasterID,
		ClientID:  clientID,
		ServiceID: r.ServiceID,
		Start:     r.Start,
		Notes:     r.Notes,
		CreatedBy: userID,
	}
}
