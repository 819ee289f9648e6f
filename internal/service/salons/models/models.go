package models

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// Request модели

// CreateSalonRequest запрос на создание салона
type CreateSalonRequest struct {
	Role         domain.UserRole     `json:"-"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	Phone        string              `json:"phone"`
	Email        *string             `json:"email,omitempty"`
	WorkingHours domain.WorkingHours `json:"workingHours"`
	ManagerIDs   []string            `json:"managerIds"`
	Services     []domain.Service    `json:"services"`
}

// UpdateSalonRequest запрос на частичное обновление салона
// nil-поле означает "не менять"
type UpdateSalonRequest struct {
	Role         domain.UserRole      `json:"-"`
	Name         *string              `json:"name,omitempty"`
	Address      *string              `json:"address,omitempty"`
	City         *string              `json:"city,omitempty"`
	Phone        *string              `json:"phone,omitempty"`
	Email        *string              `json:"email,omitempty"`
	WorkingHours *domain.WorkingHours `json:"workingHours,omitempty"`
	ManagerIDs   []string             `json:"managerIds,omitempty"`
	Services     []domain.Service     `json:"services,omitempty"`
}

// Response модели

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	Phone        string              `json:"phone"`
	Email        *string             `json:"email,omitempty"`
	WorkingHours domain.WorkingHours `json:"workingHours"`
	ManagerIDs   []string            `json:"managerIds"`
	Services     []domain.Service    `json:"services"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// Методы конвертации

// FromDomainSalon конвертирует domain модель в DTO
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	if s == nil {
		return nil
	}

	return &SalonResponse{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		City:         s.City,
		Phone:        s.Phone,
		Email:        s.Email,
		WorkingHours: s.WorkingHours,
		ManagerIDs:   s.ManagerIDs,
		Services:     s.Services,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSalonList конвертирует список domain моделей в DTO
func FromDomainSalonList(salons []*domain.Salon) *SalonListResponse {
	resp := &SalonListResponse{
		Salons: make([]SalonResponse, 0, len(salons)),
	}
	for _, s := range salons {
		if sr := FromDomainSalon(s); sr != nil {
			resp.Salons = append(resp.Salons, *sr)
		}
	}
	return resp
}
