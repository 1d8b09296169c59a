package context

import (
	"context"

	"shop/internal/domain/entity"
)

// KeySecurity is the key for storing the request security context.
const KeySecurity ContextKey = "security"

// Security carries the authenticated member's identity for the duration of
// a single request. It is immutable once stored and never shared between
// requests.
type Security struct {
	Email       string
	Role        entity.Role
	Authorities []string
}

// NewSecurity builds a Security for an authenticated member.
func NewSecurity(email string, role entity.Role) *Security {
	return &Security{
		Email:       email,
		Role:        role,
		Authorities: []string{role.Authority()},
	}
}

// WithSecurity returns a new context carrying the security context.
func WithSecurity(ctx context.Context, sec *Security) context.Context {
	return context.WithValue(ctx, KeySecurity, sec)
}

// GetSecurity extracts the security context. The second return is false
// when the request is unauthenticated.
func GetSecurity(ctx context.Context) (*Security, bool) {
	sec, ok := ctx.Value(KeySecurity).(*Security)

	return sec, ok
}
