package domain

import "time"

// Language язык интерфейса пользователя
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
	LanguageRU Language = "ru"
)

// Theme тема интерфейса
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// TimeFormatKind формат отображения времени
type TimeFormatKind string

const (
	TimeFormat12h TimeFormatKind = "12h"
	TimeFormat24h TimeFormatKind = "24h"
)

// UserSettings пользовательские настройки интерфейса
// Передаются явным объектом по цепочке вызовов, а не глобальным состоянием
type UserSettings struct {
	UserID             string
	PreferredLanguage  Language
	Theme              Theme
	Timezone           string
	TimeFormat         TimeFormatKind
	EmailNotifications bool
	PushNotifications  bool
	UpdatedAt          time.Time
}

// DefaultUserSettings настройки по умолчанию для пользователя,
// у которого нет сохранённых настроек
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:             userID,
		PreferredLanguage:  LanguageEN,
		Theme:              ThemeAuto,
		Timezone:           "UTC",
		TimeFormat:         TimeFormat24h,
		EmailNotifications: true,
		PushNotifications:  true,
	}
}
