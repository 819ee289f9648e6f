package cancel_appointment

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
	msgNotFound     = "запись не найдена"
	msgForbidden    = "доступ запрещен"
	msgCannotCancel = "запись не может быть отменена"
	msgUnauthorized = "требуется аутентификация"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]

	serviceReq := &appointmentModels.CancelAppointmentRequest{
		Actor: appointmentModels.Actor{
			UserID:   claims.UserID,
			Role:     claims.Role,
			MasterID: claims.MasterID,
		},
	}

	err := h.service.Cancel(r.Context(), appointmentID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, claims.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, claims.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
