package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func makeAppointment(id, masterID, salonID string, status domain.AppointmentStatus, start time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:       id,
		MasterID: masterID,
		SalonID:  salonID,
		ClientID: "client-1",
		Status:   status,
		Start:    start,
		End:      start.Add(30 * time.Minute),
	}
}

func TestFilteredAppointments_EmptySelectionReturnsAll(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	input := []*domain.Appointment{
		makeAppointment("a1", "m1", "s1", domain.StatusScheduled, start),
		makeAppointment("a2", "m2", "s1", domain.StatusCancelled, start.Add(time.Hour)),
		makeAppointment("a3", "m1", "s2", domain.StatusConfirmed, start.Add(2*time.Hour)),
	}

	result := FilteredAppointments(input, domain.FilterSelection{})

	require.Len(t, result, 3)
	// Порядок входа сохраняется
	assert.Equal(t, "a1", result[0].ID)
	assert.Equal(t, "a2", result[1].ID)
	assert.Equal(t, "a3", result[2].ID)
}

func TestFilteredAppointments_ByMaster(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	input := []*domain.Appointment{
		makeAppointment("a1", "m1", "s1", domain.StatusScheduled, start),
		makeAppointment("a2", "m2", "s1", domain.StatusScheduled, start),
		makeAppointment("a3", "m1", "s1", domain.StatusScheduled, start),
	}

	result := FilteredAppointments(input, domain.FilterSelection{MasterIDs: []string{"m1"}})

	require.Len(t, result, 2)
	assert.Equal(t, "a1", result[0].ID)
	assert.Equal(t, "a3", result[1].ID)
}

func TestFilteredAppointments_Conjunctive(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	input := []*domain.Appointment{
		makeAppointment("a1", "m1", "s1", domain.StatusScheduled, start),
		makeAppointment("a2", "m1", "s2", domain.StatusScheduled, start),
		makeAppointment("a3", "m1", "s1", domain.StatusCancelled, start),
		makeAppointment("a4", "m2", "s1", domain.StatusScheduled, start),
	}

	result := FilteredAppointments(input, domain.FilterSelection{
		SalonID:   ptr.Ptr("s1"),
		MasterIDs: []string{"m1"},
		Statuses:  []domain.AppointmentStatus{domain.StatusScheduled},
	})

	require.Len(t, result, 1)
	assert.Equal(t, "a1", result[0].ID)
}

func TestFilteredAppointments_DoesNotMutateInput(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	input := []*domain.Appointment{
		makeAppointment("a1", "m1", "s1", domain.StatusScheduled, start),
		makeAppointment("a2", "m2", "s1", domain.StatusScheduled, start),
	}

	_ = FilteredAppointments(input, domain.FilterSelection{MasterIDs: []string{"m2"}})

	require.Len(t, input, 2)
	assert.Equal(t, "a1", input[0].ID)
}

func TestToggleMaster_RoundTrip(t *testing.T) {
	svc := NewService(nopLogger{})

	svc.ToggleMaster("m1")
	assert.Equal(t, []string{"m1"}, svc.Selection().MasterIDs)

	svc.ToggleMaster("m2")
	assert.Equal(t, []string{"m1", "m2"}, svc.Selection().MasterIDs)

	// Повторное переключение убирает мастера из выбора
	svc.ToggleMaster("m1")
	assert.Equal(t, []string{"m2"}, svc.Selection().MasterIDs)

	svc.ToggleMaster("m2")
	assert.Empty(t, svc.Selection().MasterIDs)
}

func TestToggleStatus_RoundTrip(t *testing.T) {
	svc := NewService(nopLogger{})

	svc.ToggleStatus(domain.StatusCancelled)
	assert.Equal(t, []domain.AppointmentStatus{domain.StatusCancelled}, svc.Selection().Statuses)

	svc.ToggleStatus(domain.StatusCancelled)
	assert.Empty(t, svc.Selection().Statuses)
}

func TestClearFilters(t *testing.T) {
	svc := NewService(nopLogger{})
	svc.SelectSalon(ptr.Ptr("s1"))
	svc.SetMasters([]string{"m1", "m2"})
	svc.SetStatuses([]domain.AppointmentStatus{domain.StatusScheduled})

	svc.ClearFilters()

	sel := svc.Selection()
	require.NotNil(t, sel.SalonID)
	assert.Equal(t, "s1", *sel.SalonID)
	assert.Empty(t, sel.MasterIDs)
	assert.Empty(t, sel.Statuses)
}

func TestSetView_PartialMerge(t *testing.T) {
	svc := NewService(nopLogger{})
	date := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

	svc.SetView(SetViewParams{
		Mode:         ptr.Ptr(domain.ViewDay),
		SelectedDate: &date,
	})

	view := svc.View()
	assert.Equal(t, domain.ViewDay, view.Mode)
	// Время суток обнуляется
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), view.SelectedDate)

	// Незаданные поля сохраняются
	svc.SetView(SetViewParams{Mode: ptr.Ptr(domain.ViewMonth)})
	view = svc.View()
	assert.Equal(t, domain.ViewMonth, view.Mode)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), view.SelectedDate)
}

func TestSetView_UnknownModeIgnored(t *testing.T) {
	svc := NewService(nopLogger{})
	svc.SetView(SetViewParams{Mode: ptr.Ptr(domain.ViewDay)})

	bogus := domain.ViewMode("year")
	svc.SetView(SetViewParams{Mode: &bogus})

	assert.Equal(t, domain.ViewDay, svc.View().Mode)
}

func TestViewRange_WeekStartsOnMonday(t *testing.T) {
	svc := NewService(nopLogger{})
	// Среда 4 июня 2025
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	svc.SetView(SetViewParams{
		Mode:         ptr.Ptr(domain.ViewWeek),
		SelectedDate: &date,
	})

	from, to := svc.ViewRange()
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), to)
}

func TestViewWindow(t *testing.T) {
	// Среда 4 июня 2025
	date := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

	from, to := ViewWindow(domain.ViewDay, date)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), to)

	from, to = ViewWindow(domain.ViewWeek, date)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), to)

	from, to = ViewWindow(domain.ViewMonth, date)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestAppointmentSet_UpdateAndRemove(t *testing.T) {
	svc := NewService(nopLogger{})
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	svc.Add(makeAppointment("a1", "m1", "s1", domain.StatusScheduled, start))
	svc.Add(makeAppointment("a2", "m2", "s1", domain.StatusScheduled, start))
	require.Len(t, svc.Appointments(), 2)

	updated := makeAppointment("a1", "m1", "s1", domain.StatusConfirmed, start)
	svc.Update(updated)
	assert.Equal(t, domain.StatusConfirmed, svc.Appointments()[0].Status)

	// Неизвестный ID не меняет набор
	svc.Update(makeAppointment("ghost", "m1", "s1", domain.StatusCancelled, start))
	require.Len(t, svc.Appointments(), 2)

	svc.Remove("ghost")
	require.Len(t, svc.Appointments(), 2)

	svc.Remove("a2")
	apps := svc.Appointments()
	require.Len(t, apps, 1)
	assert.Equal(t, "a1", apps[0].ID)
}

func TestVisible_RespectsWindowAndFilters(t *testing.T) {
	svc := NewService(nopLogger{})
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	svc.SetView(SetViewParams{
		Mode:         ptr.Ptr(domain.ViewDay),
		SelectedDate: &date,
	})

	svc.SetAppointments([]*domain.Appointment{
		makeAppointment("in-window", "m1", "s1", domain.StatusScheduled, date.Add(10*time.Hour)),
		makeAppointment("next-day", "m1", "s1", domain.StatusScheduled, date.Add(26*time.Hour)),
		makeAppointment("other-master", "m2", "s1", domain.StatusScheduled, date.Add(11*time.Hour)),
	})
	svc.SetMasters([]string{"m1"})

	visible := svc.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "in-window", visible[0].ID)
}
