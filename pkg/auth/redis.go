package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
)

// Redis is a Service backend storing users and role mappings as JSON blobs
// under prefixed keys. It keeps the same semantics as Memory, including
// role mappings surviving user removal.
//
// Read-modify-write sequences (UpdateUser, AddRole, RemoveRole) are not
// transactional; this backend is a reference store, not a consistency layer.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

var _ Service = (*Redis)(nil)

// NewRedis creates a Redis-backed auth store.
//
// Example:
//
//	svc := auth.NewRedis(client, auth.WithPrefix("myapp"))
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

func (r *Redis) userKey(email string) string {
	return r.opts.prefix + ":user:" + email
}

func (r *Redis) rolesKey(email string) string {
	return r.opts.prefix + ":roles:" + email
}

func (r *Redis) NewUser(ctx context.Context, u User) (User, error) {
	data, err := json.Marshal(User{Email: u.Email, HashedPassword: u.HashedPassword})
	if err != nil {
		return User{}, err
	}
	ok, err := r.client.SetNX(ctx, r.userKey(u.Email), data, 0).Result()
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserExists, u.Email)
	}
	return User{Email: u.Email, HashedPassword: u.HashedPassword}, nil
}

func (r *Redis) UpdateUser(ctx context.Context, email string, u User) (User, error) {
	stored, err := r.FindUser(ctx, email)
	if err != nil {
		return User{}, err
	}
	stored.HashedPassword = u.HashedPassword
	data, err := json.Marshal(stored)
	if err != nil {
		return User{}, err
	}
	if err := r.client.Set(ctx, r.userKey(email), data, 0).Err(); err != nil {
		return User{}, err
	}
	return stored, nil
}

func (r *Redis) ExistsUser(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Exists(ctx, r.userKey(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) FindUser(ctx context.Context, email string) (User, error) {
	data, err := r.client.Get(ctx, r.userKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, email)
		}
		return User{}, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// RemoveUser deletes the user key only; the roles key stays in place.
func (r *Redis) RemoveUser(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Del(ctx, r.userKey(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) Authenticate(ctx context.Context, u User) (bool, error) {
	stored, err := r.FindUser(ctx, u.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return stored.HashedPassword == u.HashedPassword, nil
}

func (r *Redis) GetRoleMapping(ctx context.Context, email string) (*RoleMapping, error) {
	data, err := r.client.Get(ctx, r.rolesKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var m RoleMapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Redis) AddRole(ctx context.Context, email, role string) (*RoleMapping, error) {
	mapping, err := r.GetRoleMapping(ctx, email)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		mapping = &RoleMapping{Email: email}
	}
	if !slices.Contains(mapping.Roles, role) {
		mapping.Roles = append(mapping.Roles, role)
	}
	if err := r.saveMapping(ctx, mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

func (r *Redis) RemoveRole(ctx context.Context, email, role string) (*RoleMapping, error) {
	mapping, err := r.GetRoleMapping(ctx, email)
	if err != nil || mapping == nil {
		return nil, err
	}
	if i := slices.Index(mapping.Roles, role); i != -1 {
		mapping.Roles = slices.Delete(mapping.Roles, i, i+1)
		if err := r.saveMapping(ctx, mapping); err != nil {
			return nil, err
		}
	}
	return mapping, nil
}

func (r *Redis) IsInRole(ctx context.Context, email, role string) (bool, error) {
	mapping, err := r.GetRoleMapping(ctx, email)
	if err != nil {
		return false, err
	}
	return mapping.HasRole(role), nil
}

func (r *Redis) saveMapping(ctx context.Context, m *RoleMapping) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.rolesKey(m.Email), data, 0).Err()
}
