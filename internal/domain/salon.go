package domain

import "time"

// Service услуга, оказываемая в салоне
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        *string `json:"category,omitempty"`
}

// Salon салон с услугами и персоналом
type Salon struct {
	ID           string
	Name         string
	Address      string
	City         string
	Phone        string
	Email        *string
	WorkingHours WorkingHours
	ManagerIDs   []string
	Services     []Service
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ServiceByID возвращает услугу салона по ID (nil, если не найдена)
func (s *Salon) ServiceByID(id string) *Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

// HasManager проверяет, является ли пользователь менеджером салона
func (s *Salon) HasManager(userID string) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
