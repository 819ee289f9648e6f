package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	appointmentRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/appointment"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	"github.com/olhgfsaw/salon-booking-service/internal/permissions"
	"github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
	"github.com/olhgfsaw/salon-booking-service/internal/service/calendar"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
)

// Service сервис для работы с записями к мастерам
type Service struct {
	appointmentRepo AppointmentRepository
	masterRepo      MasterRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	masterRepo MasterRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		masterRepo:      masterRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, мастер - записи к себе,
// менеджер и администратор - любые
func (s *Service) GetByID(ctx context.Context, id string, actor models.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, actor.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !s.canRead(appointment, actor) {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetCalendar получает записи для календарного представления
// Окно выборки строится из режима (день/неделя/месяц) и выбранной даты;
// фильтры по салону, мастерам и статусам опциональны
func (s *Service) GetCalendar(ctx context.Context, req *models.GetCalendarRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCalendar: mode=%s date=%s user=%s masters=%d statuses=%d",
		req.Mode, datetime.FormatDate(req.SelectedDate), req.Actor.UserID, len(req.MasterIDs), len(req.Statuses))

	if !permissions.CanAccessCalendar(req.Actor.Role) {
		s.logger.Warn("GetCalendar: access denied for role=%s", req.Actor.Role)
		return nil, ErrAccessDenied
	}

	mode := domain.ViewMode(req.Mode)
	if !mode.Valid() {
		s.logger.Warn("GetCalendar: invalid view mode=%s", req.Mode)
		return nil, fmt.Errorf("%w: unknown view mode %q", ErrInvalidInput, req.Mode)
	}

	from, to := calendar.ViewWindow(mode, req.SelectedDate)

	filter := domain.AppointmentsFilter{
		SalonID:   req.SalonID,
		MasterIDs: req.MasterIDs,
		Statuses:  req.Statuses,
		From:      &from,
		To:        &to,
	}

	// Мастер видит в календаре только собственные записи
	if req.Actor.Role == domain.RoleMaster && req.Actor.MasterID != nil {
		filter.MasterIDs = []string{*req.Actor.MasterID}
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCalendar: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendar: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Update частично обновляет запись
// При переносе (смена времени, длительности или мастера) доступность нового
// интервала перепроверяется в serializable транзакции
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s by user=%s", id, req.Actor.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !permissions.CanEditAppointment(req.Actor.Role, appointment.MasterID, req.Actor.MasterIDOrEmpty()) {
		s.logger.Warn("Update: access denied for user=%s to appointment id=%s", req.Actor.UserID, id)
		return nil, ErrAccessDenied
	}

	if !appointment.CanBeUpdated() {
		s.logger.Warn("Update: appointment id=%s cannot be updated, status=%s", id, appointment.Status)
		return nil, ErrCannotUpdate
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	params := appointmentRepo.UpdateParams{
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	}

	var updated *domain.Appointment

	if req.RescheduleRequested() {
		targetMasterID := appointment.MasterID
		if req.MasterID != nil {
			targetMasterID = *req.MasterID
		}

		newStart := appointment.Start
		if req.Start != nil {
			newStart = *req.Start
		}

		duration := int(appointment.End.Sub(appointment.Start).Minutes())
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}
		if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
			return nil, fmt.Errorf("%w: duration %d out of range", ErrInvalidInput, duration)
		}

		newEnd := computeEnd(newStart, duration)
		params.Start = &newStart
		params.End = &newEnd

		master, err := s.masterRepo.GetByID(ctx, targetMasterID)
		if err != nil {
			if errors.Is(err, masterRepo.ErrMasterNotFound) {
				s.logger.Warn("Update: master id=%s not found", targetMasterID)
				return nil, ErrMasterNotFound
			}
			s.logger.Error("Update: failed to get master id=%s: %v", targetMasterID, err)
			return nil, fmt.Errorf("%w: Update - failed to get master: %v", ErrInternal, err)
		}

		// Проверяется только начало интервала, конец окном не ограничен
		if !isWithinWorkingHours(newStart, master.WorkingHours) {
			s.logger.Warn("Update: slot %s is outside working hours of master=%s",
				datetime.FormatDateTime(newStart), targetMasterID)
			return nil, ErrOutsideWorkingHours
		}

		txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			dayStart := datetime.StartOfDay(newStart)
			dayEnd := dayStart.AddDate(0, 0, 1)

			existing, err := s.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
				MasterIDs: []string{targetMasterID},
				From:      &dayStart,
				To:        &dayEnd,
			})
			if err != nil {
				return fmt.Errorf("%w: Update - fetch day appointments: %v", ErrInternal, err)
			}

			if !isSlotAvailableExcluding(existing, targetMasterID, id, newStart, newEnd) {
				return ErrSlotNotAvailable
			}

			updated, err = s.appointmentRepo.Update(txCtx, id, params)
			if err != nil {
				return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
			}
			return nil
		})
		if txErr != nil {
			if errors.Is(txErr, ErrSlotNotAvailable) {
				s.logger.Warn("Update: slot %s is not available for master=%s",
					datetime.FormatDateTime(newStart), targetMasterID)
				return nil, ErrSlotNotAvailable
			}
			s.logger.Error("Update: transaction failed for appointment id=%s: %v", id, txErr)
			return nil, txErr
		}
	} else {
		updated, err = s.appointmentRepo.Update(ctx, id, params)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return nil, ErrAppointmentNotFound
			}
			s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated appointment id=%s", id)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись
// Отменить можно только запись в статусе scheduled или confirmed
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, req.Actor.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Клиент может отменить свою запись, мастер - запись к себе,
	// менеджер и администратор - любую
	if appointment.ClientID != req.Actor.UserID &&
		!permissions.CanEditAppointment(req.Actor.Role, appointment.MasterID, req.Actor.MasterIDOrEmpty()) {
		s.logger.Warn("Cancel: access denied for user=%s to appointment id=%s", req.Actor.UserID, id)
		return ErrAccessDenied
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// UpdateStatus обновляет статус записи
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s by user=%s",
		id, req.Status, req.Actor.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !permissions.CanEditAppointment(req.Actor.Role, appointment.MasterID, req.Actor.MasterIDOrEmpty()) {
		s.logger.Warn("UpdateStatus: access denied for user=%s to appointment id=%s", req.Actor.UserID, id)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return nil
}

// Вспомогательные методы

// canRead проверяет право на чтение записи
func (s *Service) canRead(appointment *domain.Appointment, actor models.Actor) bool {
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return true
	case domain.RoleMaster:
		return actor.MasterID != nil && appointment.MasterID == *actor.MasterID
	case domain.RoleClient:
		return appointment.ClientID == actor.UserID
	default:
		return false
	}
}
