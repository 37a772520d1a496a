// This file holds the context plumbing for the authenticated user. The
// middleware stores the resolved user in the request context; handlers read
// it back through UserFromContext.
package auth

import (
	"context"
)

// contextKey is a private type for context keys so no other package can
// collide with them.
type contextKey string

const userContextKey contextKey = "auth_user"

// NewContextWithUser returns a child context carrying the resolved user.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated user from the context. The
// second return value is false when the request did not pass through the
// auth middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok
}
