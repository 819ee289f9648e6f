package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	authModels "github.com/olhgfsaw/salon-booking-service/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// newStaffRouter собирает маршрут доступных слотов за RequireRoles,
// как он зарегистрирован в cmd/main.go
func newStaffRouter() *mux.Router {
	r := mux.NewRouter()
	staff := r.PathPrefix("/api/v1").Subrouter()
	staff.Use(RequireRoles(nopLogger{}, domain.RoleAdmin, domain.RoleManager, domain.RoleMaster))
	staff.HandleFunc("/masters/{masterId}/available-slots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func slotsRequest(role domain.UserRole) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters/m1/available-slots?date=2025-10-13", nil)
	claims := &authModels.TokenClaims{UserID: "u1", Role: role}
	return req.WithContext(WithUserClaims(req.Context(), claims))
}

func TestRequireRoles_AvailableSlots(t *testing.T) {
	router := newStaffRouter()

	for _, role := range []domain.UserRole{domain.RoleAdmin, domain.RoleManager, domain.RoleMaster} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, slotsRequest(role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}

	for _, role := range []domain.UserRole{domain.RoleClient, domain.RoleGuest} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, slotsRequest(role))
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestRequireRoles_NoClaims(t *testing.T) {
	router := newStaffRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/masters/m1/available-slots?date=2025-10-13", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
