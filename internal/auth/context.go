package auth

import "context"

type emailKey struct{}

// WithEmail stores the verified email of the caller.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey{}, email)
}

// EmailFromContext returns the verified email, or "" for unauthenticated callers.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey{}).(string)
	return email
}
