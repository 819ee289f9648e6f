package masters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	"github.com/olhgfsaw/salon-booking-service/internal/permissions"
	"github.com/olhgfsaw/salon-booking-service/internal/service/masters/models"
)

// Service сервис для работы с мастерами
type Service struct {
	masterRepo MasterRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(masterRepo MasterRepository, logger Logger) *Service {
	return &Service{
		masterRepo: masterRepo,
		logger:     logger,
	}
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.MasterResponse, error) {
	s.logger.Info("GetByID: fetching master id=%s", id)

	master, err := s.masterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			s.logger.Warn("GetByID: master id=%s not found", id)
			return nil, ErrMasterNotFound
		}
		s.logger.Error("GetByID: repository error for master id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMaster(master), nil
}

// ListBySalon получает всех мастеров салона
func (s *Service) ListBySalon(ctx context.Context, salonID string) (*models.MasterListResponse, error) {
	s.logger.Info("ListBySalon: fetching masters for salon=%s", salonID)

	masters, err := s.masterRepo.ListBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBySalon: fetched %d masters for salon=%s", len(masters), salonID)
	return models.FromDomainMasterList(masters), nil
}

// Create создает нового мастера
// Доступно администраторам и менеджерам
func (s *Service) Create(ctx context.Context, req *models.CreateMasterRequest) (*models.MasterResponse, error) {
	s.logger.Info("Create: creating master for user=%s", req.UserID)

	if !permissions.CanManageMasters(req.Role) {
		s.logger.Warn("Create: access denied for role=%s", req.Role)
		return nil, ErrAccessDenied
	}

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if err := validateWorkingHours(req.WorkingHours); err != nil {
		s.logger.Warn("Create: invalid working hours for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	master := &domain.Master{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		SalonIDs:       req.SalonIDs,
		ServiceIDs:     req.ServiceIDs,
		WorkingHours:   req.WorkingHours,
		Status:         domain.MasterActive,
		Specialization: req.Specialization,
	}

	created, err := s.masterRepo.Create(ctx, master)
	if err != nil {
		s.logger.Error("Create: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created master id=%s", created.ID)
	return models.FromDomainMaster(created), nil
}

// Update частично обновляет мастера
// Доступно администраторам и менеджерам
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateMasterRequest) (*models.MasterResponse, error) {
	s.logger.Info("Update: updating master id=%s", id)

	if !permissions.CanManageMasters(req.Role) {
		s.logger.Warn("Update: access denied for role=%s", req.Role)
		return nil, ErrAccessDenied
	}

	params := masterRepo.UpdateParams{
		SalonIDs:       req.SalonIDs,
		ServiceIDs:     req.ServiceIDs,
		WorkingHours:   req.WorkingHours,
		Specialization: req.Specialization,
	}

	if req.WorkingHours != nil {
		if err := validateWorkingHours(*req.WorkingHours); err != nil {
			s.logger.Warn("Update: invalid working hours for master id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if req.Status != nil {
		status := domain.MasterStatus(*req.Status)
		switch status {
		case domain.MasterActive, domain.MasterInactive, domain.MasterVacation:
			params.Status = &status
		default:
			s.logger.Warn("Update: invalid status=%s for master id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: unknown master status %q", ErrInvalidInput, *req.Status)
		}
	}

	updated, err := s.masterRepo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			s.logger.Warn("Update: master id=%s not found", id)
			return nil, ErrMasterNotFound
		}
		s.logger.Error("Update: repository error for master id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated master id=%s", id)
	return models.FromDomainMaster(updated), nil
}

// validateWorkingHours проверяет каждое настроенное окно расписания:
// обе границы в формате HH:MM и начало не позже конца
func validateWorkingHours(wh domain.WorkingHours) error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		dayRange := wh.ForWeekday(day)
		if dayRange == nil {
			continue
		}
		if _, err := dayRange.Start.Minutes(); err != nil {
			return fmt.Errorf("%s: %v", day, err)
		}
		if _, err := dayRange.End.Minutes(); err != nil {
			return fmt.Errorf("%s: %v", day, err)
		}
		if dayRange.Start.IsAfter(dayRange.End) {
			return fmt.Errorf("%s: window start %s is after end %s", day, dayRange.Start, dayRange.End)
		}
	}
	return nil
}
