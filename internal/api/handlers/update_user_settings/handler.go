package update_user_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/internal/service/settings"
	settingsModels "github.com/olhgfsaw/salon-booking-service/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/settings
// Настройки может менять только их владелец и администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != claims.UserID && claims.Role != domain.RoleAdmin {
		h.logger.Warn("PUT /users/{userId}/settings - Access denied: user_id=%s, target=%s", claims.UserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req settingsModels.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{userId}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /users/{userId}/settings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/{userId}/settings - Failed to update settings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{userId}/settings - Settings updated successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
