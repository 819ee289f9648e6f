package list_salons

import (
	"net/http"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - Salons listed successfully: count=%d", len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
