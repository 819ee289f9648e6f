package update_user_settings

import (
	"context"

	settingsModels "github.com/olhgfsaw/salon-booking-service/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, userID string, req *settingsModels.UpdateSettingsRequest) (*settingsModels.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
