package logout

import (
	"net/http"
	"strings"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
)

const msgMissingToken = "требуется Bearer токен"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		h.logger.Warn("POST /auth/logout - Missing bearer token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		// Недействительный токен всё равно считается разлогиненным
		h.logger.Warn("POST /auth/logout - Token rejected: %v", err)
	}

	h.logger.Info("POST /auth/logout - User logged out")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
