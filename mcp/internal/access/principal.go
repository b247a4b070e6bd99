// Package access carries the per-invocation identity supplied by the
// external auth front and the allow-list policy gating the mutating tool.
package access

import "context"

// Principal is the authenticated caller of a tool invocation. It is
// supplied by the auth collaborator (identity headers on HTTP, the
// launching environment on stdio) and trusted as already verified.
type Principal struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the invocation's principal, if one was attached.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
