package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default provider configuration. DefaultSecret exists so the reference
// provider works out of the box; a deployment MUST override it with
// WithSecret — shipping the default to production is a security defect.
const (
	DefaultIssuer   = "keel"
	DefaultAudience = "*"
	DefaultSecret   = "keel.AuthProviderDefault*12345!"
	DefaultLifetime = time.Hour

	// DefaultScope is the scope claimed when none is requested.
	DefaultScope = "full_access"
)

// Claims is the signed token payload: registered claims plus the requested
// scope and the user's role list as granted at issuance time.
type Claims struct {
	Scope string   `json:"scope"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Provider issues and verifies HMAC-SHA256 signed bearer tokens against a
// Service, and resolves the calling Principal from incoming requests.
type Provider struct {
	svc      Service
	now      func() time.Time
	issuer   string
	audience string
	secret   []byte
	lifetime time.Duration
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithIssuer sets the issuer claim and the issuer check on verification.
func WithIssuer(issuer string) ProviderOption {
	return func(p *Provider) {
		if issuer != "" {
			p.issuer = issuer
		}
	}
}

// WithAudience sets the audience claim.
func WithAudience(audience string) ProviderOption {
	return func(p *Provider) {
		if audience != "" {
			p.audience = audience
		}
	}
}

// WithSecret sets the HMAC signing secret.
func WithSecret(secret string) ProviderOption {
	return func(p *Provider) {
		if secret != "" {
			p.secret = []byte(secret)
		}
	}
}

// WithLifetime sets the token lifetime.
func WithLifetime(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.lifetime = d
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProvider creates a provider backed by the given service.
func NewProvider(svc Service, opts ...ProviderOption) *Provider {
	p := &Provider{
		svc:      svc,
		now:      time.Now,
		issuer:   DefaultIssuer,
		audience: DefaultAudience,
		secret:   []byte(DefaultSecret),
		lifetime: DefaultLifetime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Issuer returns the configured issuer string.
func (p *Provider) Issuer() string {
	return p.issuer
}

// CreateAccessToken authenticates the user against the service and, on
// success, signs a token carrying the user's current role list. Roles are
// looked up fresh at issuance time, not cached. An empty scope claims
// DefaultScope.
func (p *Provider) CreateAccessToken(ctx context.Context, u User, scope string) (string, error) {
	ok, err := p.svc.Authenticate(ctx, u)
	if err != nil {
		return "", fmt.Errorf("authenticate %s: %w", u.Email, err)
	}
	if !ok {
		return "", ErrAuthenticationFailed
	}

	mapping, err := p.svc.GetRoleMapping(ctx, u.Email)
	if err != nil {
		return "", fmt.Errorf("role mapping %s: %w", u.Email, err)
	}
	var roles []string
	if mapping != nil {
		roles = mapping.Roles
	}
	if roles == nil {
		roles = []string{}
	}
	if scope == "" {
		scope = DefaultScope
	}

	now := p.now()
	claims := Claims{
		Scope: scope,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(p.lifetime)),
			Subject:   u.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// VerifyToken verifies signature and expiry, then checks the issuer claim
// against the configured issuer. Every failure mode collapses to
// ErrInvalidToken; no detail is surfaced.
func (p *Provider) VerifyToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Issuer != p.issuer {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser resolves the calling Principal from the request's
// Authorization header. It never fails: each of the five outcomes is a
// Principal, four of them carrying an error code.
func (p *Provider) ResolveUser(r *http.Request) *Principal {
	header := r.Header.Get("Authorization")
	if header == "" {
		return errorPrincipal(ErrorCodeCredentialsRequired)
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return errorPrincipal(ErrorCodeCredentialsBadFormat)
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return errorPrincipal(ErrorCodeCredentialsBadScheme)
	}

	claims, err := p.VerifyToken(parts[1])
	if err != nil {
		return errorPrincipal(ErrorCodeInvalidToken)
	}
	return &Principal{Details: claims}
}
