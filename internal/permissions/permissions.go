package permissions

import "github.com/olhgfsaw/salon-booking-service/internal/domain"

// CheckPermission проверяет вхождение роли в список разрешённых
func CheckPermission(role domain.UserRole, allowed []domain.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccessCalendar доступ к календарю записей
func CanAccessCalendar(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin, domain.RoleManager, domain.RoleMaster})
}

// CanManageMasters управление мастерами
func CanManageMasters(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin, domain.RoleManager})
}

// CanManageSalons управление салонами
func CanManageSalons(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin})
}

// CanManageClients управление клиентами
func CanManageClients(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin, domain.RoleManager, domain.RoleMaster})
}

// CanAccessAdminDashboard доступ к админ-панели
func CanAccessAdminDashboard(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin})
}

// CanAccessReports доступ к отчётам
func CanAccessReports(role domain.UserRole) bool {
	return CheckPermission(role, []domain.UserRole{domain.RoleAdmin, domain.RoleManager})
}

// CanEditAppointment право редактирования записи
// Админ и менеджер могут редактировать любую запись,
// мастер - только свою собственную
func CanEditAppointment(role domain.UserRole, appointmentMasterID, userMasterID string) bool {
	if role == domain.RoleAdmin || role == domain.RoleManager {
		return true
	}
	if role == domain.RoleMaster && appointmentMasterID == userMasterID {
		return true
	}
	return false
}
