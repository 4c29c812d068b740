package auth

import "context"

// User is the identity resolved by the token validation middleware for the
// current request.
type User struct {
	ID    int64
	Email string
	Name  string
}

type contextKey struct{}

// WithUser returns a context carrying the authenticated user. The value lives
// and dies with the request context, so identity can never leak into another
// request.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(contextKey{}).(User)
	return user, ok
}
