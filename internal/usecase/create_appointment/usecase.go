package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	salonRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/salon"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	masterRepo      MasterRepository
	salonRepo       SalonRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	masterRepo MasterRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		masterRepo:      masterRepo,
		salonRepo:       salonRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка идут в сериализуемой транзакции,
// чтобы две конкурирующие записи не заняли один интервал
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: salon=%s, master=%s, client=%s, service=%s, start=%s",
		req.SalonID, req.MasterID, req.ClientID, req.ServiceID, req.Start.Format(datetime.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера
	master, err := uc.masterRepo.GetByID(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("CreateAppointment: master id=%s not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get master id=%s: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 3. Мастер должен быть активен
	if !master.IsBookable() {
		uc.logger.Warn("CreateAppointment: master id=%s is not bookable, status=%s", master.ID, master.Status)
		return nil, ErrMasterNotBookable
	}

	// 4. Получаем салон и услугу
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	service := salon.ServiceByID(req.ServiceID)
	if service == nil {
		uc.logger.Warn("CreateAppointment: service id=%s not found in salon id=%s", req.ServiceID, req.SalonID)
		return nil, ErrServiceNotFound
	}

	// 5. Конец записи = начало + длительность услуги
	end := computeEnd(req.Start, service.DurationMinutes)

	// 6. Начало записи должно попадать в рабочие часы мастера
	// Конец не проверяется - генератор слотов ограничивает только начало,
	// и создание записи следует тем же правилам
	if !isWithinWorkingHours(req.Start, master.WorkingHours) {
		uc.logger.Warn("CreateAppointment: start %s is outside working hours of master id=%s",
			req.Start.Format(datetime.DateTimeFormat), master.ID)
		return nil, ErrOutsideWorkingHours
	}

	var result *domain.Appointment

	// 7. Проверяем доступность и создаём запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart := datetime.StartOfDay(req.Start)
		dayEnd := dayStart.AddDate(0, 0, 1)

		// 7.1. Все записи мастера на этот день, независимо от статуса
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			MasterIDs: []string{req.MasterID},
			From:      ptr.Ptr(dayStart),
			To:        ptr.Ptr(dayEnd),
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем, что интервал свободен
		if !isSlotAvailable(appointments, req.MasterID, req.Start, end) {
			uc.logger.Warn("CreateAppointment: slot %s-%s is not available for master id=%s",
				req.Start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), req.MasterID)
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем запись
		appointment := &domain.Appointment{
			ID:        uuid.NewString(),
			MasterID:  req.MasterID,
			ClientID:  req.ClientID,
			SalonID:   req.SalonID,
			ServiceID: req.ServiceID,
			Start:     req.Start,
			End:       end,
			Status:    domain.StatusScheduled,
			Notes:     req.Notes,
			CreatedBy: req.CreatedBy,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)
	return fromDomain(result), nil
}
