package create_master

import (
	"errors"
	"net/http"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/masters"
	masterModels "github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgUnauthorized       = "требуется аутентификация"
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

// Handle POST /api/v1/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req masterModels.CreateMasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /masters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Role = claims.Role

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, masters.ErrAccessDenied):
			h.logger.Warn("POST /masters - Access denied: user_id=%s, role=%s", claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, masters.ErrInvalidInput):
			h.logger.Warn("POST /masters - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /masters - Failed to create master: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /masters - Master created successfully: master_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
