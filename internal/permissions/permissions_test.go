package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
)

func TestCheckPermission(t *testing.T) {
	allowed := []domain.UserRole{domain.RoleAdmin, domain.RoleManager}

	assert.True(t, CheckPermission(domain.RoleAdmin, allowed))
	assert.True(t, CheckPermission(domain.RoleManager, allowed))
	assert.False(t, CheckPermission(domain.RoleMaster, allowed))
	assert.False(t, CheckPermission(domain.RoleGuest, allowed))
	assert.False(t, CheckPermission(domain.RoleAdmin, nil))
}

func TestCalendarAccess(t *testing.T) {
	tests := []struct {
		role domain.UserRole
		want bool
	}{
		{domain.RoleAdmin, true},
		{domain.RoleManager, true},
		{domain.RoleMaster, true},
		{domain.RoleClient, false},
		{domain.RoleGuest, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessCalendar(tt.role))
		})
	}
}

func TestSalonManagementIsAdminOnly(t *testing.T) {
	assert.True(t, CanManageSalons(domain.RoleAdmin))
	assert.False(t, CanManageSalons(domain.RoleManager))
	assert.False(t, CanManageSalons(domain.RoleMaster))
}

func TestCanEditAppointment(t *testing.T) {
	t.Run("admin and manager edit any appointment", func(t *testing.T) {
		assert.True(t, CanEditAppointment(domain.RoleAdmin, "m1", "other"))
		assert.True(t, CanEditAppointment(domain.RoleManager, "m1", "other"))
	})

	t.Run("master edits only own appointment", func(t *testing.T) {
		assert.True(t, CanEditAppointment(domain.RoleMaster, "m1", "m1"))
		assert.False(t, CanEditAppointment(domain.RoleMaster, "m1", "m2"))
	})

	t.Run("client and guest never edit", func(t *testing.T) {
		assert.False(t, CanEditAppointment(domain.RoleClient, "m1", "m1"))
		assert.False(t, CanEditAppointment(domain.RoleGuest, "m1", "m1"))
	})
}
