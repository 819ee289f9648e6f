package get_user_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

const (
	msgForbidden    = "доступ запрещен"
	msgUnauthorized = "требуется аутентификация"
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

// Handle GET /api/v1/users/{userId}/settings
// Настройки доступны только их владельцу и администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID != claims.UserID && claims.Role != domain.RoleAdmin {
		h.logger.Warn("GET /users/{userId}/settings - Access denied: user_id=%s, target=%s", claims.UserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/settings - Failed to get settings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/settings - Settings fetched successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
