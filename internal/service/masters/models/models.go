package models

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// Request модели

// CreateMasterRequest запрос на создание мастера
type CreateMasterRequest struct {
	Role           domain.UserRole     `json:"-"`
	UserID         string              `json:"userId"`
	SalonIDs       []string            `json:"salonIds"`
	ServiceIDs     []string            `json:"serviceIds"`
	WorkingHours   domain.WorkingHours `json:"workingHours"`
	Specialization *string             `json:"specialization,omitempty"`
}

// UpdateMasterRequest запрос на частичное обновление мастера
type UpdateMasterRequest struct {
	Role           domain.UserRole      `json:"-"`
	SalonIDs       []string             `json:"salonIds,omitempty"`
	ServiceIDs     []string             `json:"serviceIds,omitempty"`
	WorkingHours   *domain.WorkingHours `json:"workingHours,omitempty"`
	Status         *string              `json:"status,omitempty"`
	Specialization *string              `json:"specialization,omitempty"`
}

// Response модели

// MasterResponse ответ с данными мастера
type MasterResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	SalonIDs       []string            `json:"salonIds"`
	ServiceIDs     []string            `json:"serviceIds"`
	WorkingHours   domain.WorkingHours `json:"workingHours"`
	Status         string              `json:"status"`
	Specialization *string             `json:"specialization,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// MasterListResponse ответ со списком мастеров
type MasterListResponse struct {
	Masters []MasterResponse `json:"masters"`
}

// Методы конвертации

// FromDomainMaster конвертирует domain модель в DTO
func FromDomainMaster(m *domain.Master) *MasterResponse {
	if m == nil {
		return nil
	}

	return &MasterResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		SalonIDs:       m.SalonIDs,
		ServiceIDs:     m.ServiceIDs,
		WorkingHours:   m.WorkingHours,
		Status:         string(m.Status),
		Specialization: m.Specialization,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomainMasterList конвертирует список domain моделей в DTO
func FromDomainMasterList(masters []*domain.Master) *MasterListResponse {
	resp := &MasterListResponse{
		Masters: make([]MasterResponse, 0, len(masters)),
	}
	for _, m := range masters {
		if mr := FromDomainMaster(m); mr != nil {
			resp.Masters = append(resp.Masters, *mr)
		}
	}
	return resp
}
