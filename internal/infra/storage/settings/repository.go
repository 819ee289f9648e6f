package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/dbmetrics"
	"github.com/olhgfsaw/salon-booking-service/pkg/psqlbuilder"
)

// settingsColumns полный список колонок таблицы user_settings
var settingsColumns = []string{
	"user_id",
	"preferred_language",
	"theme",
	"timezone",
	"time_format",
	"email_notifications",
	"push_notifications",
	"updated_at",
}

// Repository репозиторий для работы с настройками пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки пользователя
func (r *Repository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("user_settings").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.UserSettings
	var language, theme, timeFormat string
	var updatedAt sql.NullTime

	row := executor.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&s.UserID,
		&language,
		&theme,
		&s.Timezone,
		&timeFormat,
		&s.EmailNotifications,
		&s.PushNotifications,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.PreferredLanguage = domain.Language(language)
	s.Theme = domain.Theme(theme)
	s.TimeFormat = domain.TimeFormatKind(timeFormat)
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки пользователя, создавая запись при отсутствии
func (r *Repository) Upsert(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_settings").
		Columns(
			"user_id",
			"preferred_language",
			"theme",
			"timezone",
			"time_format",
			"email_notifications",
			"push_notifications",
		).
		Values(
			s.UserID,
			string(s.PreferredLanguage),
			string(s.Theme),
			s.Timezone,
			string(s.TimeFormat),
			s.EmailNotifications,
			s.PushNotifications,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			preferred_language = EXCLUDED.preferred_language,
			theme = EXCLUDED.theme,
			timezone = EXCLUDED.timezone,
			time_format = EXCLUDED.time_format,
			email_notifications = EXCLUDED.email_notifications,
			push_notifications = EXCLUDED.push_notifications,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}
