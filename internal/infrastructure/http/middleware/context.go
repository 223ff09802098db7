package middleware

import (
	"context"

	"github.com/LucasMartinsVieira/toodoo/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the authenticated caller attached by the auth guard. It is
// the only channel through which handlers learn who is calling.
type Identity struct {
	ID    domain.UserID
	Name  string
	Email string
}

// WithIdentity injects the resolved identity into the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the identity from the context, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(identityContextKey)
	if v == nil {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
