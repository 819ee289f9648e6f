package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	appointmentRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/appointment"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	"github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	byID map[string]*domain.Appointment
}

func newFakeAppointmentRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{byID: make(map[string]*domain.Appointment)}
	for _, a := range appointments {
		repo.byID[a.ID] = a
	}
	return repo
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range r.byID {
		if len(filter.MasterIDs) > 0 && !containsString(filter.MasterIDs, a.MasterID) {
			continue
		}
		if filter.From != nil && a.Start.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !a.Start.Before(*filter.To) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, id string, params appointmentRepo.UpdateParams) (*domain.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	if params.MasterID != nil {
		a.MasterID = *params.MasterID
	}
	if params.ServiceID != nil {
		a.ServiceID = *params.ServiceID
	}
	if params.Start != nil {
		a.Start = *params.Start
	}
	if params.End != nil {
		a.End = *params.End
	}
	if params.Notes != nil {
		a.Notes = params.Notes
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	a, ok := r.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

type fakeMasterRepo struct {
	byID map[string]*domain.Master
}

func (r *fakeMasterRepo) GetByID(_ context.Context, id string) (*domain.Master, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, masterRepo.ErrMasterNotFound
	}
	return m, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testDay = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // Monday

func at(hour, minute int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, time.UTC)
}

func scheduledAppointment(id, masterID, clientID string, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		MasterID:  masterID,
		ClientID:  clientID,
		SalonID:   "salon-1",
		ServiceID: "svc-1",
		Start:     start,
		End:       end,
		Status:    domain.StatusScheduled,
		CreatedBy: clientID,
	}
}

func allDayMaster(id string) *domain.Master {
	return &domain.Master{
		ID:     id,
		Status: domain.MasterActive,
		WorkingHours: domain.WorkingHours{
			Monday: &domain.TimeRange{Start: "09:00", End: "18:00"},
		},
	}
}

func newTestService(appointments *fakeAppointmentRepo, masters *fakeMasterRepo) *Service {
	if masters == nil {
		masters = &fakeMasterRepo{byID: map[string]*domain.Master{
			"m1": allDayMaster("m1"),
		}}
	}
	return NewService(appointments, masters, fakeTxManager{}, nopLogger{})
}

func admin() models.Actor {
	return models.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func client(id string) models.Actor {
	return models.Actor{UserID: id, Role: domain.RoleClient}
}

func masterActor(userID, masterID string) models.Actor {
	return models.Actor{UserID: userID, Role: domain.RoleMaster, MasterID: &masterID}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := newFakeAppointmentRepo(
		scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
	)
	svc := newTestService(repo, nil)
	ctx := context.Background()

	t.Run("admin reads any appointment", func(t *testing.T) {
		got, err := svc.GetByID(ctx, "a1", admin())
		require.NoError(t, err)
		assert.Equal(t, "a1", got.ID)
	})

	t.Run("owner client reads own appointment", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "a1", client("client-1"))
		require.NoError(t, err)
	})

	t.Run("other client is rejected", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "a1", client("client-2"))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("master reads appointment to self", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "a1", masterActor("user-m1", "m1"))
		require.NoError(t, err)
	})

	t.Run("master is rejected for other master's appointment", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "a1", masterActor("user-m2", "m2"))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "nope", admin())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetCalendar(t *testing.T) {
	repo := newFakeAppointmentRepo(
		scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		scheduledAppointment("a2", "m2", "client-2", at(12, 0), at(13, 0)),
		// за пределами недели
		scheduledAppointment("a3", "m1", "client-1", at(10, 0).AddDate(0, 0, 10), at(11, 0).AddDate(0, 0, 10)),
	)
	svc := newTestService(repo, nil)
	ctx := context.Background()

	t.Run("week window bounds selection", func(t *testing.T) {
		got, err := svc.GetCalendar(ctx, &models.GetCalendarRequest{
			Actor:        admin(),
			Mode:         "week",
			SelectedDate: testDay,
		})
		require.NoError(t, err)
		assert.Len(t, got.Appointments, 2)
	})

	t.Run("master sees only own appointments", func(t *testing.T) {
		got, err := svc.GetCalendar(ctx, &models.GetCalendarRequest{
			Actor:        masterActor("user-m1", "m1"),
			Mode:         "week",
			SelectedDate: testDay,
			MasterIDs:    []string{"m1", "m2"},
		})
		require.NoError(t, err)
		require.Len(t, got.Appointments, 1)
		assert.Equal(t, "m1", got.Appointments[0].MasterID)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := svc.GetCalendar(ctx, &models.GetCalendarRequest{
			Actor:        admin(),
			Mode:         "year",
			SelectedDate: testDay,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("guest has no calendar access", func(t *testing.T) {
		_, err := svc.GetCalendar(ctx, &models.GetCalendarRequest{
			Actor:        models.Actor{UserID: "g1", Role: domain.RoleGuest},
			Mode:         "week",
			SelectedDate: testDay,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestUpdate_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("moves appointment to a free slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		got, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(14, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, at(14, 0), got.Start)
		assert.Equal(t, at(15, 0), got.End)
	})

	t.Run("rejects slot occupied by another appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
			scheduledAppointment("a2", "m1", "client-2", at(14, 0), at(15, 0)),
		)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(14, 30)),
		})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("own previous slot does not block the move", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		// сдвиг на полчаса пересекается со старым интервалом самой записи
		got, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(10, 30)),
		})
		require.NoError(t, err)
		assert.Equal(t, at(10, 30), got.Start)
	})

	t.Run("cancelled appointment still blocks the slot", func(t *testing.T) {
		cancelled := scheduledAppointment("a2", "m1", "client-2", at(14, 0), at(15, 0))
		cancelled.Status = domain.StatusCancelled

		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
			cancelled,
		)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(14, 0)),
		})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("start outside working hours", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(8, 0)),
		})
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("slot ending after closing is allowed", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		// 17:30 + 60 минут заканчивается после 18:00, но начало в окне
		got, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Start: ptr.Ptr(at(17, 30)),
		})
		require.NoError(t, err)
		assert.Equal(t, at(18, 30), got.End)
	})

	t.Run("duration out of range", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor:           admin(),
			DurationMinutes: ptr.Ptr(domain.MaxSlotDurationMinutes + 1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("client cannot update", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: client("client-1"),
			Start: ptr.Ptr(at(14, 0)),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed appointment cannot be updated", func(t *testing.T) {
		completed := scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0))
		completed.Status = domain.StatusCompleted

		svc := newTestService(newFakeAppointmentRepo(completed), nil)

		_, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Notes: ptr.Ptr("late note"),
		})
		assert.ErrorIs(t, err, ErrCannotUpdate)
	})

	t.Run("notes only update skips slot check", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		got, err := svc.Update(ctx, "a1", &models.UpdateAppointmentRequest{
			Actor: admin(),
			Notes: ptr.Ptr("bring own polish"),
		})
		require.NoError(t, err)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "bring own polish", *got.Notes)
		assert.Equal(t, at(10, 0), got.Start)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("client cancels own appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		err := svc.Cancel(ctx, "a1", &models.CancelAppointmentRequest{Actor: client("client-1")})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.byID["a1"].Status)
	})

	t.Run("other client cannot cancel", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		err := svc.Cancel(ctx, "a1", &models.CancelAppointmentRequest{Actor: client("client-2")})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		completed := scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0))
		completed.Status = domain.StatusCompleted

		svc := newTestService(newFakeAppointmentRepo(completed), nil)

		err := svc.Cancel(ctx, "a1", &models.CancelAppointmentRequest{Actor: admin()})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("master confirms appointment to self", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		err := svc.UpdateStatus(ctx, "a1", &models.UpdateStatusRequest{
			Actor:  masterActor("user-m1", "m1"),
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.byID["a1"].Status)
	})

	t.Run("invalid status value", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		err := svc.UpdateStatus(ctx, "a1", &models.UpdateStatusRequest{
			Actor:  admin(),
			Status: "done",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("client cannot change status", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			scheduledAppointment("a1", "m1", "client-1", at(10, 0), at(11, 0)),
		)
		svc := newTestService(repo, nil)

		err := svc.UpdateStatus(ctx, "a1", &models.UpdateStatusRequest{
			Actor:  client("client-1"),
			Status: "completed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
