package auth

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Memory is the in-memory Service backend. State lives for the process
// lifetime. Safe for concurrent use.
type Memory struct {
	users    map[string]User
	mappings map[string]*RoleMapping
	mu       sync.RWMutex
}

var _ Service = (*Memory)(nil)

// NewMemory creates an empty in-memory auth store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]User),
		mappings: make(map[string]*RoleMapping),
	}
}

func (m *Memory) NewUser(_ context.Context, u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserExists, u.Email)
	}
	stored := User{Email: u.Email, HashedPassword: u.HashedPassword}
	m.users[stored.Email] = stored
	return stored, nil
}

func (m *Memory) UpdateUser(_ context.Context, email string, u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.users[email]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	stored.HashedPassword = u.HashedPassword
	m.users[email] = stored
	return stored, nil
}

func (m *Memory) ExistsUser(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[email]
	return ok, nil
}

func (m *Memory) FindUser(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	return u, nil
}

// RemoveUser deletes the user. Role mappings survive removal; see Service.
func (m *Memory) RemoveUser(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; !ok {
		return false, nil
	}
	delete(m.users, email)
	return true, nil
}

func (m *Memory) Authenticate(_ context.Context, u User) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.users[u.Email]
	return ok && stored.HashedPassword == u.HashedPassword, nil
}

func (m *Memory) GetRoleMapping(_ context.Context, email string) (*RoleMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mappings[email].clone(), nil
}

func (m *Memory) AddRole(_ context.Context, email, role string) (*RoleMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mapping, ok := m.mappings[email]
	if !ok {
		mapping = &RoleMapping{Email: email}
		m.mappings[email] = mapping
	}
	if !slices.Contains(mapping.Roles, role) {
		mapping.Roles = append(mapping.Roles, role)
	}
	return mapping.clone(), nil
}

func (m *Memory) RemoveRole(_ context.Context, email, role string) (*RoleMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mapping, ok := m.mappings[email]
	if !ok {
		return nil, nil
	}
	if i := slices.Index(mapping.Roles, role); i != -1 {
		mapping.Roles = slices.Delete(mapping.Roles, i, i+1)
	}
	return mapping.clone(), nil
}

func (m *Memory) IsInRole(_ context.Context, email, role string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mappings[email].HasRole(role), nil
}
