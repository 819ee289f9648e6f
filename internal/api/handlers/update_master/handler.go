package update_master

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/service/masters"
	masterModels "github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMasterNotFound     = "мастер не найден"
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

// Handle PATCH /api/v1/masters/{masterId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	masterID := mux.Vars(r)["masterId"]

	var req masterModels.UpdateMasterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /masters/{masterId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Role = claims.Role

	result, err := h.service.Update(r.Context(), masterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, masters.ErrMasterNotFound):
			h.logger.Warn("PATCH /masters/{masterId} - Master not found: master_id=%s", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, masters.ErrAccessDenied):
			h.logger.Warn("PATCH /masters/{masterId} - Access denied: user_id=%s, role=%s", claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, masters.ErrInvalidInput):
			h.logger.Warn("PATCH /masters/{masterId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /masters/{masterId} - Failed to update master: master_id=%s, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /masters/{masterId} - Master updated successfully: master_id=%s", masterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
