// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the staff user ID in the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the staff user ID from the context.
// Returns 0 and false if the value is missing, non-positive, or of the wrong type.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// UserIDPtrFromCtx is UserIDFromCtx for nullable foreign keys.
func UserIDPtrFromCtx(ctx context.Context) *int64 {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// WithUserRole stores the staff role in the context.
func WithUserRole(ctx context.Context, role domain.UserRole) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx extracts the staff role from the context.
func UserRoleFromCtx(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.UserRole)
	return role, ok
}

// IsAdminCtx reports whether the authenticated user is an admin.
func IsAdminCtx(ctx context.Context) bool {
	role, ok := UserRoleFromCtx(ctx)
	return ok && role.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
