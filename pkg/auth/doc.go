// Package auth provides the reference authentication stack: a user and
// role-mapping store, a bearer-token provider, and the per-request Principal.
//
// # Service
//
// Service is the credential and role store. Two backends are provided:
// Memory (process-lifetime maps) and Redis (JSON blobs under prefixed keys).
// The service never hashes passwords — callers store and present already
// hashed credentials, and Authenticate compares them byte for byte. The
// HashPassword helper produces deterministic argon2id digests suitable for
// that comparison.
//
// # Provider
//
// Provider issues and verifies HMAC-SHA256 signed bearer tokens and resolves
// the caller's Principal from a request's Authorization header. It is a
// reference implementation: there is no token revocation, and a deployment
// MUST override the default signing secret.
//
//	svc := auth.NewMemory()
//	provider := auth.NewProvider(svc,
//	    auth.WithIssuer("my-api"),
//	    auth.WithSecret(os.Getenv("AUTH_SECRET")),
//	)
//
//	token, err := provider.CreateAccessToken(ctx, auth.User{
//	    Email:          "admin@example.com",
//	    HashedPassword: auth.HashPassword("s3cret", pepper),
//	}, "")
//
// # Principal
//
// ResolveUser never fails: every outcome is a Principal carrying either the
// decoded token claims or one of the credentials_* / invalid_token error
// codes. Callers branch on the error code; role-gated routes are rejected by
// the server before the handler runs.
package auth
