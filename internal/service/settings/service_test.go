package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	settingsRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/settings"
	"github.com/olhgfsaw/salon-booking-service/internal/service/settings/models"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSettingsRepo struct {
	byUser map[string]*domain.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byUser: make(map[string]*domain.UserSettings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, userID string) (*domain.UserSettings, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	copied := *settings
	copied.UpdatedAt = time.Now()
	r.byUser[settings.UserID] = &copied
	return &copied, nil
}

func TestGet_ReturnsDefaultsWithoutRecord(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "en", got.PreferredLanguage)
	assert.Equal(t, "auto", got.Theme)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, "24h", got.TimeFormat)
	assert.True(t, got.EmailNotifications)

	// Чтение дефолтов ничего не сохраняет
	assert.Empty(t, repo.byUser)
}

func TestUpdate_MergesOntoDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	got, err := svc.Update(context.Background(), "u1", &models.UpdateSettingsRequest{
		Theme:    ptr.Ptr("dark"),
		Timezone: ptr.Ptr("Europe/Madrid"),
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "Europe/Madrid", got.Timezone)
	// незатронутые поля остаются дефолтными
	assert.Equal(t, "en", got.PreferredLanguage)
	assert.Equal(t, "24h", got.TimeFormat)
}

func TestUpdate_MergesOntoStored(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Update(ctx, "u1", &models.UpdateSettingsRequest{
		PreferredLanguage: ptr.Ptr("ru"),
		Theme:             ptr.Ptr("dark"),
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, "u1", &models.UpdateSettingsRequest{
		TimeFormat: ptr.Ptr("12h"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ru", got.PreferredLanguage)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "12h", got.TimeFormat)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{"unknown language", &models.UpdateSettingsRequest{PreferredLanguage: ptr.Ptr("fr")}},
		{"unknown theme", &models.UpdateSettingsRequest{Theme: ptr.Ptr("sepia")}},
		{"unknown timezone", &models.UpdateSettingsRequest{Timezone: ptr.Ptr("Mars/Olympus")}},
		{"unknown time format", &models.UpdateSettingsRequest{TimeFormat: ptr.Ptr("military")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "u1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
