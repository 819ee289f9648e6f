package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	masterRepo      MasterRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	masterRepo MasterRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		masterRepo:      masterRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%s, date=%s, duration=%d",
		req.MasterID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	// 2. Получаем мастера
	master, err := uc.masterRepo.GetByID(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailableSlots: master id=%s not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get master id=%s: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 3. Если у мастера нет рабочих часов на этот день недели - слотов нет
	if master.WorkingHours.ForWeekday(req.Date.Weekday()) == nil {
		uc.logger.Info("GetAvailableSlots: master=%s has no working hours on %s",
			req.MasterID, req.Date.Weekday())
		return &Response{
			MasterID:        req.MasterID,
			Date:            req.Date,
			DurationMinutes: duration,
			Slots:           []time.Time{},
		}, nil
	}

	// 4. Получаем ВСЕ записи мастера на эту дату, включая отменённые:
	// проверка доступности учитывает записи во всех статусах
	dayStart := datetime.StartOfDay(req.Date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		MasterIDs: []string{req.MasterID},
		From:      ptr.Ptr(dayStart),
		To:        ptr.Ptr(dayEnd),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем свободные слоты
	slots, err := generateAvailableSlots(master, req.Date, appointments, duration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for master=%s, date=%s",
		len(slots), req.MasterID, req.Date.Format(domain.DateFormat))

	return &Response{
		MasterID:        req.MasterID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
