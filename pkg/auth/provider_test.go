package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keelframework/keel/pkg/auth"
)

func newProviderWithUser(t *testing.T, opts ...auth.ProviderOption) (*auth.Provider, auth.Service) {
	t.Helper()
	ctx := context.Background()

	svc := auth.NewMemory()
	_, err := svc.NewUser(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"})
	require.NoError(t, err)
	_, err = svc.AddRole(ctx, "admin@example.com", "admin")
	require.NoError(t, err)

	return auth.NewProvider(svc, opts...), svc
}

func TestCreateAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip preserves issuer, subject, scope, and roles", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		claims, err := provider.VerifyToken(token)
		require.NoError(t, err)
		require.Equal(t, auth.DefaultIssuer, claims.Issuer)
		require.Equal(t, "admin@example.com", claims.Subject)
		require.Equal(t, auth.DefaultScope, claims.Scope)
		require.Equal(t, []string{"admin"}, claims.Roles)
		require.NotEmpty(t, claims.ID)
	})

	t.Run("bad credentials are rejected", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		_, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "wrong"}, "")
		require.ErrorIs(t, err, auth.ErrAuthenticationFailed)
	})

	t.Run("roles are read fresh at issuance time", func(t *testing.T) {
		t.Parallel()

		provider, svc := newProviderWithUser(t)
		_, err := svc.AddRole(ctx, "admin@example.com", "auditor")
		require.NoError(t, err)

		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "read_only")
		require.NoError(t, err)

		claims, err := provider.VerifyToken(token)
		require.NoError(t, err)
		require.Equal(t, "read_only", claims.Scope)
		require.ElementsMatch(t, []string{"admin", "auditor"}, claims.Roles)
	})

	t.Run("user without roles gets an empty role list", func(t *testing.T) {
		t.Parallel()

		svc := auth.NewMemory()
		_, err := svc.NewUser(ctx, auth.User{Email: "plain@example.com", HashedPassword: "h"})
		require.NoError(t, err)
		provider := auth.NewProvider(svc)

		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "plain@example.com", HashedPassword: "h"}, "")
		require.NoError(t, err)

		claims, err := provider.VerifyToken(token)
		require.NoError(t, err)
		require.Empty(t, claims.Roles)
	})
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("expired token is invalid", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		clock := func() time.Time { return now }
		provider, _ := newProviderWithUser(t, auth.WithLifetime(time.Minute), auth.WithClock(func() time.Time { return clock() }))

		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		clock = func() time.Time { return now.Add(2 * time.Minute) }
		_, err = provider.VerifyToken(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("issuer mismatch is invalid even with a valid signature", func(t *testing.T) {
		t.Parallel()

		svc := auth.NewMemory()
		_, err := svc.NewUser(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"})
		require.NoError(t, err)

		issuing := auth.NewProvider(svc, auth.WithIssuer("issuer-a"))
		verifying := auth.NewProvider(svc, auth.WithIssuer("issuer-b"))

		token, err := issuing.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		_, err = verifying.VerifyToken(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong secret is invalid", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		other, _ := newProviderWithUser(t, auth.WithSecret("another-secret"))

		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		_, err = other.VerifyToken(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		_, err := provider.VerifyToken("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestResolveUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newRequest := func(header string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return req
	}

	t.Run("missing header yields credentials_required", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		p := provider.ResolveUser(newRequest(""))
		require.False(t, p.IsAuthenticated())
		require.Equal(t, auth.ErrorCodeCredentialsRequired, p.ErrorCode)
	})

	t.Run("wrong part count yields credentials_bad_format", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		p := provider.ResolveUser(newRequest("Bearer abc extra"))
		require.Equal(t, auth.ErrorCodeCredentialsBadFormat, p.ErrorCode)

		p = provider.ResolveUser(newRequest("Bearer"))
		require.Equal(t, auth.ErrorCodeCredentialsBadFormat, p.ErrorCode)
	})

	t.Run("wrong scheme yields credentials_bad_scheme", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		p := provider.ResolveUser(newRequest("Token abc"))
		require.Equal(t, auth.ErrorCodeCredentialsBadScheme, p.ErrorCode)
	})

	t.Run("scheme match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		p := provider.ResolveUser(newRequest("bearer " + token))
		require.True(t, p.IsAuthenticated())
		require.Empty(t, p.ErrorCode)
	})

	t.Run("bad token yields invalid_token", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		p := provider.ResolveUser(newRequest("Bearer garbage"))
		require.Equal(t, auth.ErrorCodeInvalidToken, p.ErrorCode)
	})

	t.Run("valid token yields an authenticated principal", func(t *testing.T) {
		t.Parallel()

		provider, _ := newProviderWithUser(t)
		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		p := provider.ResolveUser(newRequest("Bearer " + token))
		require.True(t, p.IsAuthenticated())
		require.True(t, p.HasRole("admin"))
		require.False(t, p.HasRole("user"))
		require.True(t, p.IsResourceOwner("admin@example.com"))
		require.False(t, p.IsResourceOwner("other@example.com"))
	})
}

func TestPrincipal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("anonymous principal is unauthenticated without error code", func(t *testing.T) {
		t.Parallel()

		p := auth.Anonymous()
		require.False(t, p.IsAuthenticated())
		require.Empty(t, p.ErrorCode)
		require.False(t, p.HasRole("admin"))
	})

	t.Run("is-in-role consults the live store", func(t *testing.T) {
		t.Parallel()

		provider, svc := newProviderWithUser(t)
		token, err := provider.CreateAccessToken(ctx, auth.User{Email: "admin@example.com", HashedPassword: "hash"}, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		p := provider.ResolveUser(req)

		// Token still claims admin, but the store no longer grants it.
		_, err = svc.RemoveRole(ctx, "admin@example.com", "admin")
		require.NoError(t, err)

		require.True(t, p.HasRole("admin"))
		require.False(t, p.IsInRole(ctx, svc, "admin"))
	})
}
