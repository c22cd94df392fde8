package proto

import (
	"context"

	"github.com/google/uuid"
)

// ContextKeyUser is the context key for the acting user.
var ContextKeyUser = &struct{ string }{"user"}

// UserFromContext returns the acting user from the context.
func UserFromContext(ctx context.Context) (uuid.UUID, bool) {
	if u, ok := ctx.Value(ContextKeyUser).(uuid.UUID); ok {
		return u, true
	}
	return uuid.Nil, false
}

// WithUserContext returns a new context with the acting user.
func WithUserContext(ctx context.Context, user uuid.UUID) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}
