package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/olhgfsaw/salon-booking-service/internal/api/handlers"
	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	authModels "github.com/olhgfsaw/salon-booking-service/internal/service/auth/models"
)

const (
	msgMissingToken = "требуется Bearer токен"
	msgInvalidToken = "токен недействителен"
	msgForbidden    = "недостаточно прав"
)

// TokenValidator интерфейс проверки токенов
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*authModels.TokenClaims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладёт данные пользователя в контекст
func Auth(validator TokenValidator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("Auth: missing bearer token, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Warn("Auth: token rejected, path=%s: %v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
		})
	}
}

// RequireRoles пропускает только пользователей с одной из перечисленных ролей
// Должен стоять после Auth
func RequireRoles(logger Logger, roles ...domain.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := UserClaims(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("RequireRoles: role=%s rejected, path=%s", claims.Role, r.URL.Path)
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}
