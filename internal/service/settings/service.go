package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	settingsRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/settings"
	"github.com/olhgfsaw/salon-booking-service/internal/service/settings/models"
)

// Service сервис для работы с настройками пользователей
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки пользователя
// Пользователь без сохранённых настроек получает значения по умолчанию
func (s *Service) Get(ctx context.Context, userID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for user=%s", userID)

	stored, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			defaults := domain.DefaultUserSettings(userID)
			return models.FromDomainSettings(&defaults), nil
		}
		s.logger.Error("Get: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(stored), nil
}

// Update частично обновляет настройки пользователя
// Базой для слияния служат сохранённые настройки, а при их отсутствии -
// значения по умолчанию
func (s *Service) Update(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for user=%s", userID)

	current, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			defaults := domain.DefaultUserSettings(userID)
			current = &defaults
		} else {
			s.logger.Error("Update: repository error for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	if err := applyUpdate(current, req); err != nil {
		s.logger.Warn("Update: invalid settings for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("Update: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for user=%s", userID)
	return models.FromDomainSettings(saved), nil
}

// applyUpdate накладывает заданные поля запроса на текущие настройки
func applyUpdate(current *domain.UserSettings, req *models.UpdateSettingsRequest) error {
	if req.PreferredLanguage != nil {
		lang := domain.Language(*req.PreferredLanguage)
		switch lang {
		case domain.LanguageEN, domain.LanguageES, domain.LanguageRU:
			current.PreferredLanguage = lang
		default:
			return fmt.Errorf("unknown language %q", *req.PreferredLanguage)
		}
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		switch theme {
		case domain.ThemeLight, domain.ThemeDark, domain.ThemeAuto:
			current.Theme = theme
		default:
			return fmt.Errorf("unknown theme %q", *req.Theme)
		}
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", *req.Timezone)
		}
		current.Timezone = *req.Timezone
	}
	if req.TimeFormat != nil {
		format := domain.TimeFormatKind(*req.TimeFormat)
		switch format {
		case domain.TimeFormat12h, domain.TimeFormat24h:
			current.TimeFormat = format
		default:
			return fmt.Errorf("unknown time format %q", *req.TimeFormat)
		}
	}
	if req.EmailNotifications != nil {
		current.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		current.PushNotifications = *req.PushNotifications
	}
	return nil
}
