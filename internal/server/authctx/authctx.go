package authctx

import "context"

type contextKey struct{}

// Identity is the authenticated principal attached to a request context.
type Identity struct {
	UserID int64
	Name   string
	Role   string
}

func With(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Current returns the request identity, if any.
func Current(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
