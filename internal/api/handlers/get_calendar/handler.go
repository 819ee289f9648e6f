package get_calendar

import (
	"errors"
	"net/http"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/appointments"
	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgForbidden    = "доступ запрещен"
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

// Handle GET /api/v1/appointments
// Query params: mode (day|week|month), date (YYYY-MM-DD), salonId,
// masterIds (через запятую), statuses (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	actor := appointmentModels.Actor{
		UserID:   claims.UserID,
		Role:     claims.Role,
		MasterID: claims.MasterID,
	}

	serviceReq, err := ToServiceRequest(actor, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetCalendar(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments - Access denied: user_id=%s, role=%s", claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /appointments - Failed to get calendar: user_id=%s, error=%v", claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Calendar retrieved successfully: user_id=%s, appointments_count=%d",
		claims.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
