package auth

import (
	"context"
	"slices"
)

// Principal error codes produced by Provider.ResolveUser. Each incoming
// request resolves to exactly one of the five outcomes: one of these four
// codes, or an authenticated principal with no code.
const (
	// ErrorCodeCredentialsRequired: no Authorization header was present.
	ErrorCodeCredentialsRequired = "credentials_required"

	// ErrorCodeCredentialsBadFormat: the header was not exactly two
	// space-separated parts.
	ErrorCodeCredentialsBadFormat = "credentials_bad_format"

	// ErrorCodeCredentialsBadScheme: the scheme was not "Bearer"
	// (case-insensitive).
	ErrorCodeCredentialsBadScheme = "credentials_bad_scheme"

	// ErrorCodeInvalidToken: the token failed verification (signature,
	// expiry, or issuer mismatch — not distinguished).
	ErrorCodeInvalidToken = "invalid_token"
)

// Principal is the resolved identity of one incoming request. Exactly one of
// Details and ErrorCode is meaningful: the caller is authenticated iff
// Details is set and ErrorCode is empty. Principals are re-evaluated fresh
// on every request; there are no state transitions.
type Principal struct {
	// Details holds the decoded token claims for an authenticated caller.
	Details *Claims

	// ErrorCode names the resolution failure for an unauthenticated caller.
	ErrorCode string
}

// Anonymous returns the principal used when no auth provider is configured:
// unauthenticated, with no error code.
func Anonymous() *Principal {
	return &Principal{}
}

// errorPrincipal builds the unauthenticated principal for an error code.
func errorPrincipal(code string) *Principal {
	return &Principal{ErrorCode: code}
}

// IsAuthenticated reports whether the caller presented a valid token.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.Details != nil && p.ErrorCode == ""
}

// HasRole reports whether the token's role list contains the given role.
// The list reflects the grants at token issuance time.
func (p *Principal) HasRole(role string) bool {
	if !p.IsAuthenticated() {
		return false
	}
	return slices.Contains(p.Details.Roles, role)
}

// HasAnyRole reports whether the token's role list contains at least one of
// the given roles. An empty argument list never matches.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// IsResourceOwner reports whether the token subject equals owner.
func (p *Principal) IsResourceOwner(owner string) bool {
	if !p.IsAuthenticated() || owner == "" {
		return false
	}
	return p.Details.Subject == owner
}

// IsInRole checks the caller's role against the live store rather than the
// token's issuance-time role list.
func (p *Principal) IsInRole(ctx context.Context, svc Service, role string) bool {
	if !p.IsAuthenticated() || svc == nil {
		return false
	}
	ok, err := svc.IsInRole(ctx, p.Details.Subject, role)
	return err == nil && ok
}
