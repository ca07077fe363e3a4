package auth

import "context"

// Service is the credential and role-mapping store.
//
// The store holds already-hashed passwords; Authenticate performs a
// byte-for-byte comparison and no hashing of its own. Both state spaces
// (users and role mappings) are unbounded and live for the backend's
// lifetime.
type Service interface {
	// NewUser stores a new user. Returns ErrUserExists if the email is
	// already taken.
	NewUser(ctx context.Context, u User) (User, error)

	// UpdateUser overwrites the stored hashed password for email.
	// Returns ErrUserNotFound if no such user exists.
	UpdateUser(ctx context.Context, email string, u User) (User, error)

	// ExistsUser reports whether a user is stored for email.
	ExistsUser(ctx context.Context, email string) (bool, error)

	// FindUser returns the stored user for email, or ErrUserNotFound.
	FindUser(ctx context.Context, email string) (User, error)

	// RemoveUser deletes the user and reports whether a removal occurred.
	// Role mappings for the email are deliberately left in place: a
	// re-registered email inherits its previous grants.
	RemoveUser(ctx context.Context, email string) (bool, error)

	// Authenticate reports whether a user is stored for u.Email and its
	// hashed password exactly equals u.HashedPassword.
	Authenticate(ctx context.Context, u User) (bool, error)

	// GetRoleMapping returns the role mapping for email, or nil if none
	// exists.
	GetRoleMapping(ctx context.Context, email string) (*RoleMapping, error)

	// AddRole grants a role, creating the mapping on first grant.
	// Granting an already-held role is a no-op; the role set never holds
	// duplicates. Returns the resulting mapping.
	AddRole(ctx context.Context, email, role string) (*RoleMapping, error)

	// RemoveRole revokes a role if present. Returns nil if no mapping
	// exists for the email; otherwise returns the (possibly unchanged)
	// mapping.
	RemoveRole(ctx context.Context, email, role string) (*RoleMapping, error)

	// IsInRole reports whether the email's mapping grants the role.
	// False if no mapping exists or its role set is empty.
	IsInRole(ctx context.Context, email, role string) (bool, error)
}
