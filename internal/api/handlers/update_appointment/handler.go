package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/appointments"
	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "запись не найдена"
	msgMasterNotFound      = "мастер не найден"
	msgForbidden           = "доступ запрещен"
	msgCannotUpdate        = "запись не может быть изменена"
	msgOutsideWorkingHours = "время вне рабочих часов мастера"
	msgSlotNotAvailable    = "выбранное время уже занято"
	msgUnauthorized        = "требуется аутентификация"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]

	var req appointmentModels.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = appointmentModels.Actor{
		UserID:   claims.UserID,
		Role:     claims.Role,
		MasterID: claims.MasterID,
	}

	result, err := h.service.Update(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrMasterNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Master not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, claims.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotUpdate):
			h.logger.Warn("PATCH /appointments/{id} - Cannot update: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgCannotUpdate)

		case errors.Is(err, appointments.ErrOutsideWorkingHours):
			h.logger.Warn("PATCH /appointments/{id} - Outside working hours: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, appointments.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%s, user_id=%s",
		appointmentID, claims.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
