package models

import (
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на частичное обновление настроек
// Незаданные поля сохраняют текущие значения
type UpdateSettingsRequest struct {
	PreferredLanguage  *string `json:"preferredLanguage,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	TimeFormat         *string `json:"timeFormat,omitempty"`
	EmailNotifications *bool   `json:"emailNotifications,omitempty"`
	PushNotifications  *bool   `json:"pushNotifications,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками пользователя
type SettingsResponse struct {
	UserID             string    `json:"userId"`
	PreferredLanguage  string    `json:"preferredLanguage"`
	Theme              string    `json:"theme"`
	Timezone           string    `json:"timezone"`
	TimeFormat         string    `json:"timeFormat"`
	EmailNotifications bool      `json:"emailNotifications"`
	PushNotifications  bool      `json:"pushNotifications"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.UserSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		UserID:             s.UserID,
		PreferredLanguage:  string(s.PreferredLanguage),
		Theme:              string(s.Theme),
		Timezone:           s.Timezone,
		TimeFormat:         string(s.TimeFormat),
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		UpdatedAt:          s.UpdatedAt,
	}
}
