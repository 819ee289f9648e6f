package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// monday 2025-10-13 is a Monday
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func appointment(masterID string, start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:       "app-" + start.Format("15:04"),
		MasterID: masterID,
		Start:    start,
		End:      end,
		Status:   status,
	}
}

func mondayMaster(id string, start, end types.TimeString) *domain.Master {
	return &domain.Master{
		ID:     id,
		Status: domain.MasterActive,
		WorkingHours: domain.WorkingHours{
			Monday: &domain.TimeRange{Start: start, End: end},
		},
	}
}

func TestIsSlotAvailable(t *testing.T) {
	existing := []*domain.Appointment{
		appointment("m1", at(monday, 10, 0), at(monday, 11, 0), domain.StatusConfirmed),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"candidate before existing", at(monday, 9, 0), at(monday, 10, 0), true},
		{"candidate after existing", at(monday, 11, 0), at(monday, 12, 0), true},
		{"candidate start inside existing", at(monday, 10, 30), at(monday, 11, 30), false},
		{"candidate end inside existing", at(monday, 9, 30), at(monday, 10, 30), false},
		{"candidate contains existing", at(monday, 9, 0), at(monday, 12, 0), false},
		{"candidate inside existing", at(monday, 10, 15), at(monday, 10, 45), false},
		{"exact same interval", at(monday, 10, 0), at(monday, 11, 0), false},
		{"touching at existing end", at(monday, 11, 0), at(monday, 11, 30), true},
		{"touching at existing start", at(monday, 9, 30), at(monday, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotAvailable(existing, "m1", tt.start, tt.end))
		})
	}
}

func TestIsSlotAvailableFiltersByMaster(t *testing.T) {
	existing := []*domain.Appointment{
		appointment("m2", at(monday, 10, 0), at(monday, 11, 0), domain.StatusConfirmed),
	}

	// Чужая запись не блокирует интервал
	assert.True(t, isSlotAvailable(existing, "m1", at(monday, 10, 0), at(monday, 11, 0)))
	assert.False(t, isSlotAvailable(existing, "m2", at(monday, 10, 0), at(monday, 11, 0)))
}

func TestIsSlotAvailableCancelledStillBlocks(t *testing.T) {
	// Отменённые и завершённые записи тоже блокируют интервал
	for _, status := range domain.AllStatuses {
		existing := []*domain.Appointment{
			appointment("m1", at(monday, 10, 0), at(monday, 11, 0), status),
		}
		assert.False(t, isSlotAvailable(existing, "m1", at(monday, 10, 30), at(monday, 11, 30)),
			"status %s must block the interval", status)
	}
}

func TestIsSlotAvailableEmptyCollection(t *testing.T) {
	assert.True(t, isSlotAvailable(nil, "m1", at(monday, 10, 0), at(monday, 11, 0)))
}

func TestIsWithinWorkingHours(t *testing.T) {
	hours := domain.WorkingHours{
		Monday: &domain.TimeRange{Start: "09:00", End: "18:00"},
	}

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"inside window", at(monday, 12, 0), true},
		{"start boundary is inclusive", at(monday, 9, 0), true},
		{"end boundary is inclusive", at(monday, 18, 0), true},
		{"before window", at(monday, 8, 59), false},
		{"after window", at(monday, 18, 1), false},
		{"weekday without configured hours", at(monday.AddDate(0, 0, 1), 12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWithinWorkingHours(tt.instant, hours))
		})
	}
}

func TestGenerateAvailableSlotsNoWorkingHours(t *testing.T) {
	master := &domain.Master{ID: "m1", Status: domain.MasterActive}

	// Записи не влияют: день без рабочих часов пуст всегда
	existing := []*domain.Appointment{
		appointment("m1", at(monday, 10, 0), at(monday, 11, 0), domain.StatusConfirmed),
	}

	slots, err := generateAvailableSlots(master, monday, existing, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateAvailableSlotsAroundBooking(t *testing.T) {
	// Мастер работает в понедельник 09:00-12:00, одна запись 10:00-10:30
	master := mondayMaster("m1", "09:00", "12:00")
	existing := []*domain.Appointment{
		appointment("m1", at(monday, 10, 0), at(monday, 10, 30), domain.StatusConfirmed),
	}

	slots, err := generateAvailableSlots(master, monday, existing, 30)
	require.NoError(t, err)

	// 10:00 занят; 10:30 начинается ровно на конце записи и свободен
	want := []time.Time{
		at(monday, 9, 0),
		at(monday, 9, 30),
		at(monday, 10, 30),
		at(monday, 11, 0),
		at(monday, 11, 30),
	}
	assert.Equal(t, want, slots)
}

func TestGenerateAvailableSlotsEmptyDay(t *testing.T) {
	master := mondayMaster("m1", "09:00", "11:00")

	slots, err := generateAvailableSlots(master, monday, nil, 30)
	require.NoError(t, err)

	want := []time.Time{
		at(monday, 9, 0),
		at(monday, 9, 30),
		at(monday, 10, 0),
		at(monday, 10, 30),
	}
	assert.Equal(t, want, slots)
}

func TestGenerateAvailableSlotsLastSlotUnclamped(t *testing.T) {
	// Граничится только начало слота: при окне 09:00-10:15 и шаге 30 минут
	// слот 10:00 включается, хотя его конец (10:30) выходит за окно
	master := mondayMaster("m1", "09:00", "10:15")

	slots, err := generateAvailableSlots(master, monday, nil, 30)
	require.NoError(t, err)

	want := []time.Time{
		at(monday, 9, 0),
		at(monday, 9, 30),
		at(monday, 10, 0),
	}
	assert.Equal(t, want, slots)
}

func TestGenerateAvailableSlotsConsistentWithIsSlotAvailable(t *testing.T) {
	master := mondayMaster("m1", "09:00", "17:00")
	existing := []*domain.Appointment{
		appointment("m1", at(monday, 9, 45), at(monday, 10, 45), domain.StatusScheduled),
		appointment("m1", at(monday, 13, 0), at(monday, 14, 0), domain.StatusCancelled),
		appointment("m2", at(monday, 11, 0), at(monday, 12, 0), domain.StatusConfirmed),
	}

	slots, err := generateAvailableSlots(master, monday, existing, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// Каждый выданный слот обязан проходить проверку доступности
	for _, slot := range slots {
		assert.True(t, isSlotAvailable(existing, "m1", slot, computeEnd(slot, 30)),
			"slot %s must be available", slot.Format("15:04"))
	}

	// И выдача хронологически упорядочена
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestComputeEnd(t *testing.T) {
	start := at(monday, 10, 0)

	assert.Equal(t, at(monday, 10, 30), computeEnd(start, 30))
	assert.Equal(t, at(monday, 11, 30), computeEnd(start, 90))

	// Отрицательная длительность не валидируется: конец раньше начала
	assert.Equal(t, at(monday, 9, 30), computeEnd(start, -30))
}
