package middleware

import (
	"context"

	authModels "github.com/olhgfsaw/salon-booking-service/internal/service/auth/models"
)

type ctxKey struct{}

var userClaimsKey ctxKey

// WithUserClaims кладёт проверенные данные токена в контекст запроса
func WithUserClaims(ctx context.Context, claims *authModels.TokenClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// UserClaims достаёт данные токена из контекста запроса
// Второе значение false, если запрос не проходил аутентификацию
func UserClaims(ctx context.Context) (*authModels.TokenClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*authModels.TokenClaims)
	return claims, ok
}
