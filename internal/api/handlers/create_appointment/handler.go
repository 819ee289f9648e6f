package create_appointment

import (
	"errors"
	"net/http"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/api/middleware"
	createAppointment "github.com/olhgfsaw/salon-booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMasterNotFound       = "мастер не найден"
	msgSalonNotFound        = "салон не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgMasterNotBookable    = "мастер не принимает записи"
	msgOutsideWorkingHours  = "время вне рабочих часов мастера"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgUnauthorized         = "требуется аутентификация"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserClaims(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(claims.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMasterNotFound):
			h.logger.Warn("POST /appointments - Master not found: master_id=%s", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: salon_id=%s", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: salon_id=%s, service_id=%s", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrMasterNotBookable):
			h.logger.Warn("POST /appointments - Master not bookable: master_id=%s", req.MasterID)
			handlers.RespondBadRequest(w, msgMasterNotBookable)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: master_id=%s, start=%s", req.MasterID, req.Start)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: master_id=%s, start=%s", req.MasterID, req.Start)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: master_id=%s, error=%v", req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, master_id=%s",
		result.ID, result.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
