package datetime

import (
	"fmt"
	"time"

	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// Форматы дат и времени, используемые во всём сервисе
const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04"
)

// Period единица календарного сдвига
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatTime форматирует время суток как HH:MM
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// FormatDateTime форматирует дату и время как YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %v", s, err)
	}
	return t, nil
}

// StartOfDay обнуляет время суток
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek возвращает понедельник недели, содержащей t (неделя начинается с понедельника)
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth возвращает первое число месяца, содержащего t
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekDays возвращает семь дней недели, содержащей t, начиная с понедельника
func WeekDays(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthDays возвращает все дни месяца, содержащего t
func MonthDays(t time.Time) []time.Time {
	start := StartOfMonth(t)
	next := start.AddDate(0, 1, 0)

	days := make([]time.Time, 0, 31)
	for d := start; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AddPeriod сдвигает дату вперёд на amount периодов
func AddPeriod(t time.Time, amount int, unit Period) time.Time {
	switch unit {
	case PeriodDay:
		return t.AddDate(0, 0, amount)
	case PeriodWeek:
		return t.AddDate(0, 0, amount*7)
	case PeriodMonth:
		return t.AddDate(0, amount, 0)
	default:
		return t
	}
}

// SubtractPeriod сдвигает дату назад на amount периодов
func SubtractPeriod(t time.Time, amount int, unit Period) time.Time {
	return AddPeriod(t, -amount, unit)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GenerateTimeGrid возвращает сетку времён от start до end включительно
// с шагом stepMinutes. Используется для отрисовки временной шкалы календаря
func GenerateTimeGrid(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", stepMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	grid := make([]types.TimeString, 0)
	for m := startMin; m <= endMin; m += stepMinutes {
		grid = append(grid, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return grid, nil
}
