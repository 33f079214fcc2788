// Package utils holds cross-cutting helpers shared by the server and
// the client: context keys, the request-integrity hasher pool, JSON
// response writing and JWT issuing/parsing.
package utils

import (
	"context"
)

// ctxKey is a private context-key type so values stored here can never
// collide with string keys from other packages.
type ctxKey string

func (c ctxKey) String() string { return string(c) }

// UserIDCtxKey carries the authenticated user's id (int64) through a
// request context. The auth middleware writes it; handlers read it via
// GetUserIDFromContext.
var UserIDCtxKey = ctxKey("userID")

// GetUserIDFromContext extracts the authenticated user id from ctx.
// ok is false when the value is absent or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
