package salons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	salonRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/salon"
	"github.com/olhgfsaw/salon-booking-service/internal/service/salons/models"
	"github.com/olhgfsaw/salon-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSalonRepo struct {
	byID map[string]*domain.Salon
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{byID: make(map[string]*domain.Salon)}
}

func (r *fakeSalonRepo) Create(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
	copied := *salon
	r.byID[salon.ID] = &copied
	return &copied, nil
}

func (r *fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSalonRepo) List(_ context.Context) ([]*domain.Salon, error) {
	salons := make([]*domain.Salon, 0, len(r.byID))
	for _, s := range r.byID {
		copied := *s
		salons = append(salons, &copied)
	}
	return salons, nil
}

func (r *fakeSalonRepo) Update(_ context.Context, id string, params salonRepo.UpdateParams) (*domain.Salon, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	if params.Name != nil {
		s.Name = *params.Name
	}
	if params.Address != nil {
		s.Address = *params.Address
	}
	if params.City != nil {
		s.City = *params.City
	}
	if params.Phone != nil {
		s.Phone = *params.Phone
	}
	if params.Email != nil {
		s.Email = params.Email
	}
	if params.WorkingHours != nil {
		s.WorkingHours = *params.WorkingHours
	}
	if params.ManagerIDs != nil {
		s.ManagerIDs = params.ManagerIDs
	}
	if params.Services != nil {
		s.Services = params.Services
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSalonRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return salonRepo.ErrSalonNotFound
	}
	delete(r.byID, id)
	return nil
}

func seedSalon(repo *fakeSalonRepo, id string) {
	repo.byID[id] = &domain.Salon{
		ID:      id,
		Name:    "Студия Блик",
		Address: "Невский 1",
		City:    "Санкт-Петербург",
		Phone:   "+7 900 000-00-00",
		Services: []domain.Service{
			{ID: "svc-1", Name: "Стрижка", DurationMinutes: 60, Price: 1500},
		},
	}
}

func TestCreate_AdminOnly(t *testing.T) {
	repo := newFakeSalonRepo()
	svc := NewService(repo, nopLogger{})

	req := &models.CreateSalonRequest{
		Role: domain.RoleManager,
		Name: "Студия Блик",
	}
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	req.Role = domain.RoleAdmin
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Студия Блик", created.Name)
}

func TestCreate_ValidatesServiceDuration(t *testing.T) {
	svc := NewService(newFakeSalonRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateSalonRequest{
		Role: domain.RoleAdmin,
		Name: "Студия Блик",
		Services: []domain.Service{
			{ID: "svc-1", Name: "Стрижка", DurationMinutes: 2},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeSalonRepo()
	seedSalon(repo, "salon-1")
	svc := NewService(repo, nopLogger{})

	updated, err := svc.Update(context.Background(), "salon-1", &models.UpdateSalonRequest{
		Role: domain.RoleAdmin,
		Name: ptr.Ptr("Студия Свет"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Студия Свет", updated.Name)
	assert.Equal(t, "Невский 1", updated.Address)
	assert.Len(t, updated.Services, 1)
}

func TestUpdate_AccessAndValidation(t *testing.T) {
	repo := newFakeSalonRepo()
	seedSalon(repo, "salon-1")
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), "salon-1", &models.UpdateSalonRequest{
		Role: domain.RoleManager,
		Name: ptr.Ptr("Студия Свет"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), "salon-1", &models.UpdateSalonRequest{
		Role: domain.RoleAdmin,
		Name: ptr.Ptr(""),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), "salon-1", &models.UpdateSalonRequest{
		Role: domain.RoleAdmin,
		Services: []domain.Service{
			{ID: "svc-2", Name: "Окрашивание", DurationMinutes: 900},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), "missing", &models.UpdateSalonRequest{
		Role: domain.RoleAdmin,
		Name: ptr.Ptr("Студия Свет"),
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeSalonRepo()
	seedSalon(repo, "salon-1")
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), "salon-1", domain.RoleManager)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), "salon-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.byID)

	err = svc.Delete(context.Background(), "salon-1", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}
