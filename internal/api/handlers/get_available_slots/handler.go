package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	getAvailableSlots "github.com/olhgfsaw/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность слота"
	msgMasterNotFound  = "мастер не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	masterID := vars["masterId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /masters/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Длительность опциональна, 0 означает значение по умолчанию
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		durationMinutes = parsed
	}

	useCaseReq, err := ToUseCaseRequest(masterID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Master not found: master_id=%s", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid input: master_id=%s, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /masters/{id}/available-slots - Failed to get slots: master_id=%s, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /masters/{id}/available-slots - Slots retrieved successfully: master_id=%s, date=%s, slots_count=%d",
		masterID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
