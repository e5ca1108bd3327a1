package auth

import (
	"context"
)

type contextKey string

// ContextKeyOperator is the context key for the authenticated operator identity
const ContextKeyOperator contextKey = "operator"

// WithOperator records how the operator authenticated ("secret" or the token subject).
func WithOperator(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, ContextKeyOperator, identity)
}

// OperatorFromContext retrieves the operator identity from the context
func OperatorFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(ContextKeyOperator).(string)
	return identity, ok
}
