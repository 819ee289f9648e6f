package get_salon_masters

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
)

type Handler struct {
	service MasterService
	logger  Logger
}

func NewHandler(service MasterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	result, err := h.service.ListBySalon(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/{id}/masters - Failed to list masters: salon_id=%s, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{id}/masters - Masters retrieved successfully: salon_id=%s, masters_count=%d",
		salonID, len(result.Masters))
	handlers.RespondJSON(w, http.StatusOK, result)
}
