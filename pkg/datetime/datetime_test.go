package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC), date(2025, 6, 2)},
		{"monday itself", date(2025, 6, 2), date(2025, 6, 2)},
		{"sunday belongs to previous monday", date(2025, 6, 8), date(2025, 6, 2)},
		{"week spanning month boundary", date(2025, 7, 1), date(2025, 6, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(date(2025, 6, 4))

	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	assert.Equal(t, date(2025, 6, 2), days[0])
	assert.Equal(t, date(2025, 6, 8), days[6])
}

func TestMonthDays(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		days := MonthDays(date(2025, 6, 15))
		require.Len(t, days, 30)
		assert.Equal(t, date(2025, 6, 1), days[0])
		assert.Equal(t, date(2025, 6, 30), days[29])
	})

	t.Run("february in leap year", func(t *testing.T) {
		days := MonthDays(date(2024, 2, 10))
		require.Len(t, days, 29)
	})
}

func TestAddPeriod(t *testing.T) {
	base := date(2025, 1, 31)

	assert.Equal(t, date(2025, 2, 1), AddPeriod(base, 1, PeriodDay))
	assert.Equal(t, date(2025, 2, 7), AddPeriod(base, 1, PeriodWeek))
	// time.AddDate нормализует несуществующее 31 февраля
	assert.Equal(t, date(2025, 3, 3), AddPeriod(base, 1, PeriodMonth))
	assert.Equal(t, base, AddPeriod(base, 1, Period("year")))

	assert.Equal(t, date(2025, 1, 24), SubtractPeriod(base, 1, PeriodWeek))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 4, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 6, 4, 23, 59, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-04")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 6, 4), parsed)

	_, err = ParseDate("04.06.2025")
	assert.Error(t, err)
}

func TestGenerateTimeGrid(t *testing.T) {
	t.Run("hourly grid", func(t *testing.T) {
		grid, err := GenerateTimeGrid("09:00", "12:00", 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "12:00"}, grid)
	})

	t.Run("step does not land on end", func(t *testing.T) {
		grid, err := GenerateTimeGrid("09:00", "10:10", 45)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "09:45"}, grid)
	})

	t.Run("invalid step", func(t *testing.T) {
		_, err := GenerateTimeGrid("09:00", "12:00", 0)
		assert.Error(t, err)
	})
}
