package api

import (
	"context"
)

type keyType string

const (
	userIDKey    keyType = "userID"
	roleKey      keyType = "role"
	requestIDKey keyType = "requestID"
)

// ctxWithIdentity records the authenticated user's id and role name.
func ctxWithIdentity(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func ctxUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func ctxRole(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func ctxRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
