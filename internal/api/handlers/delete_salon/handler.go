package delete_salon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/salons"
)

const (
	msgSalonNotFound = "салон не найден"
	msgForbidden     = "доступ запрещен"
	msgUnauthorized  = "требуется аутентификация"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/salons/{salonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	salonID := mux.Vars(r)["salonId"]

	if err := h.service.Delete(r.Context(), salonID, claims.Role); err != nil {
		switch {
		case errors.Is(err, salons.ErrSalonNotFound):
			h.logger.Warn("DELETE /salons/{salonId} - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, salons.ErrAccessDenied):
			h.logger.Warn("DELETE /salons/{salonId} - Access denied: user_id=%s, role=%s", claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /salons/{salonId} - Failed to delete salon: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/{salonId} - Salon deleted successfully: salon_id=%s", salonID)
	w.WriteHeader(http.StatusNoContent)
}
