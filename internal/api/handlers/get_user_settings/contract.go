package get_user_settings

import (
	"context"

	settingsModels "github.com/olhgfsaw/salon-booking-service/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, userID string) (*settingsModels.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
