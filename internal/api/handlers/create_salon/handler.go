package create_salon

import (
	"errors"
	"net/http"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/salons"
	salonModels "github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgUnauthorized       = "требуется аутентификация"
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

// Handle POST /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req salonModels.CreateSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Role = claims.Role

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salons.ErrAccessDenied):
			h.logger.Warn("POST /salons - Access denied: user_id=%s, role=%s", claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, salons.ErrInvalidInput):
			h.logger.Warn("POST /salons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /salons - Failed to create salon: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons - Salon created successfully: salon_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
