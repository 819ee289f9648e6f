package domain

import (
	"fmt"
	"time"
)

// UserRole роль пользователя в системе
// Закрытое множество значений, см. Valid
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMaster  UserRole = "master"
	RoleClient  UserRole = "client"
	RoleGuest   UserRole = "guest"
)

// Valid проверяет, что роль принадлежит известному множеству
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMaster, RoleClient, RoleGuest:
		return true
	default:
		return false
	}
}

// ParseUserRole конвертирует строку в UserRole с валидацией
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown user role: %q", s)
	}
	return role, nil
}

// User аутентифицированный пользователь системы
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         UserRole
	SalonIDs     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
