package middlewares

import (
	"github.com/keelframework/keel/internal"
	"github.com/keelframework/keel/pkg/auth"
)

// Authenticate returns middleware that resolves the bearer token on
// every request and stores the resulting principal in the context.
// Resolution never fails the request by itself: an unauthenticated
// caller gets an error-coded principal and the request continues.
// Use RequireRoles (or check the principal in the handler) to gate access.
//
// Registry-driven routes resolve the principal themselves; this
// middleware covers manually declared handlers.
func Authenticate(provider *auth.Provider) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			principal := auth.Anonymous()
			if provider != nil {
				principal = provider.ResolveUser(c.Request())
			}
			c.Set(internal.PrincipalKey{}, principal)
			return next(c)
		}
	}
}

// GetPrincipal returns the principal stored by Authenticate (or by the
// route pipeline). Anonymous when neither ran.
func GetPrincipal(c internal.Context) *auth.Principal {
	return c.Principal()
}

// RequireRoles returns middleware that rejects requests whose principal
// holds none of the given roles. The check runs against the token's
// issuance-time role list.
func RequireRoles(roles ...string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if !c.Principal().HasAnyRole(roles...) {
				return internal.ErrUnauthorized("Not authorized")
			}
			return next(c)
		}
	}
}

// RequireAuthenticated returns middleware that rejects requests without
// a valid token, regardless of roles.
func RequireAuthenticated() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if !c.Principal().IsAuthenticated() {
				return internal.ErrUnauthorized("Not authorized")
			}
			return next(c)
		}
	}
}
