package middleware

import (
	"context"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

type contextKey int

const (
	principalKey contextKey = iota
	requestIDKey
)

// Principal пользователь, прошедший аутентификацию
type Principal struct {
	Email string
	Role  domain.Role
}

// IsAdmin проверяет роль администратора
func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// WithPrincipal кладёт пользователя в контекст
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal извлекает пользователя из контекста запроса
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok && p.Email != ""
}

// GetRequestID возвращает идентификатор запроса
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
