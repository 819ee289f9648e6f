package salons

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	salonRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/salon"
	"github.com/olhgfsaw/salon-booking-service/internal/permissions"
	"github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
)

// Service сервис для работы с салонами
type Service struct {
	salonRepo SalonRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		logger:    logger,
	}
}

// GetByID получает салон по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SalonResponse, error) {
	s.logger.Info("GetByID: fetching salon id=%s", id)

	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetByID: salon id=%s not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetByID: repository error for salon id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// List получает все салоны
func (s *Service) List(ctx context.Context) (*models.SalonListResponse, error) {
	s.logger.Info("List: fetching salons")

	salons, err := s.salonRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d salons", len(salons))
	return models.FromDomainSalonList(salons), nil
}

// Create создает новый салон
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("Create: creating salon name=%s", req.Name)

	if !permissions.CanManageSalons(req.Role) {
		s.logger.Warn("Create: access denied for role=%s", req.Role)
		return nil, ErrAccessDenied
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, service := range req.Services {
		if service.DurationMinutes < domain.MinSlotDurationMinutes || service.DurationMinutes > domain.MaxSlotDurationMinutes {
			return nil, fmt.Errorf("%w: service %q duration %d out of range", ErrInvalidInput, service.Name, service.DurationMinutes)
		}
	}

	salon := &domain.Salon{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkingHours: req.WorkingHours,
		ManagerIDs:   req.ManagerIDs,
		Services:     req.Services,
	}

	created, err := s.salonRepo.Create(ctx, salon)
	if err != nil {
		s.logger.Error("Create: repository error for salon name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created salon id=%s", created.ID)
	return models.FromDomainSalon(created), nil
}

// Update частично обновляет салон
// Доступно только администраторам
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("Update: updating salon id=%s", id)

	if !permissions.CanManageSalons(req.Role) {
		s.logger.Warn("Update: access denied for role=%s", req.Role)
		return nil, ErrAccessDenied
	}

	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	for _, service := range req.Services {
		if service.DurationMinutes < domain.MinSlotDurationMinutes || service.DurationMinutes > domain.MaxSlotDurationMinutes {
			return nil, fmt.Errorf("%w: service %q duration %d out of range", ErrInvalidInput, service.Name, service.DurationMinutes)
		}
	}

	params := salonRepo.UpdateParams{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkingHours: req.WorkingHours,
		ManagerIDs:   req.ManagerIDs,
		Services:     req.Services,
	}

	updated, err := s.salonRepo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("Update: salon id=%s not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Update: repository error for salon id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated salon id=%s", updated.ID)
	return models.FromDomainSalon(updated), nil
}

// Delete удаляет салон
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, id string, role domain.UserRole) error {
	s.logger.Info("Delete: deleting salon id=%s", id)

	if !permissions.CanManageSalons(role) {
		s.logger.Warn("Delete: access denied for role=%s", role)
		return ErrAccessDenied
	}

	if err := s.salonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("Delete: salon id=%s not found", id)
			return ErrSalonNotFound
		}
		s.logger.Error("Delete: repository error for salon id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted salon id=%s", id)
	return nil
}
