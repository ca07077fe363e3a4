package auth

import "slices"

// User is a stored credential record. Email is the unique key.
// HashedPassword is opaque to this package; see HashPassword.
type User struct {
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password"`
}

// RoleMapping associates an email with the set of role names granted to it.
// A mapping is created lazily on the first grant and is not removed when the
// owning user is removed.
type RoleMapping struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the mapping grants the given role.
func (m *RoleMapping) HasRole(role string) bool {
	if m == nil {
		return false
	}
	return slices.Contains(m.Roles, role)
}

// clone returns a deep copy so stored mappings never alias caller slices.
func (m *RoleMapping) clone() *RoleMapping {
	if m == nil {
		return nil
	}
	return &RoleMapping{
		Email: m.Email,
		Roles: slices.Clone(m.Roles),
	}
}
