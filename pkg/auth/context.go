package auth

import "context"

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithCaller attaches the authenticated caller to the context.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

// CallerFromContext retrieves the authenticated caller from the context.
// Returns false when the request was not authenticated.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(contextKey{}).(Caller)
	return caller, ok
}

// IsPlatformOwner reports whether the context carries a platform-owner caller.
// Unauthenticated requests are never platform owners.
func IsPlatformOwner(ctx context.Context) bool {
	caller, ok := CallerFromContext(ctx)
	return ok && caller.IsPlatformOwner()
}
