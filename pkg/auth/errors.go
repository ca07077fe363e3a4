package auth

import "errors"

// Sentinel errors for the auth package.
var (
	// ErrUserExists is returned by NewUser when the email is already taken.
	ErrUserExists = errors.New("auth: user already exists")

	// ErrUserNotFound is returned when no user is stored for an email.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrAuthenticationFailed is returned by CreateAccessToken when the
	// presented credentials do not match a stored user.
	ErrAuthenticationFailed = errors.New("auth: username/password combination invalid")

	// ErrInvalidToken is returned by VerifyToken for every verification
	// failure — bad signature, expiry, malformed token, or issuer mismatch.
	// No further detail is surfaced to callers.
	ErrInvalidToken = errors.New("auth: invalid token")
)
