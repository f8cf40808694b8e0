package utils

import (
	"context"

	"camrental/pkg/contextkeys"
)

// UserIDFromContext returns the authenticated user id bound by the auth
// middleware.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	return id, ok
}

func UserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(contextkeys.UserRoleKey).(string)
	return role
}

func UserNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(contextkeys.UserNameKey).(string)
	return name
}
