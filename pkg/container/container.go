package container

import (
	"fmt"
	"sync"
)

// Factory produces a value on resolution. It receives the container the
// lookup was made against, so factories bound on a parent see request-scoped
// bindings when resolved through a child.
type Factory func(c *Container) any

// binding is a single registration: either a ready value or a factory.
// Singleton factories memoize their first result.
type binding struct {
	value     any
	factory   Factory
	singleton bool
	resolved  bool
}

// namedKey qualifies a binding key with a name.
type namedKey struct {
	key  string
	name string
}

// Container is a string-keyed binding registry with parent-chain lookup.
// All methods are safe for concurrent use.
type Container struct {
	parent   *Container
	bindings map[string]*binding
	named    map[namedKey]*binding
	mu       sync.RWMutex
}

// New creates an empty root container.
func New() *Container {
	return &Container{
		bindings: make(map[string]*binding),
		named:    make(map[namedKey]*binding),
	}
}

// Child creates a scoped container. Lookups fall back to the parent chain;
// writes stay local to the child.
func (c *Container) Child() *Container {
	child := New()
	child.parent = c
	return child
}

// BindValue registers a ready value under key, replacing any previous
// binding for that key in this container.
func (c *Container) BindValue(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{value: v, resolved: true}
}

// Bind registers a factory under key. The factory runs on every resolution.
func (c *Container) Bind(key string, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{factory: f}
}

// BindSingleton registers a factory under key whose first result is memoized
// and returned on subsequent resolutions.
func (c *Container) BindSingleton(key string, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{factory: f, singleton: true}
}

// BindNamed registers a factory under a key/name pair. The factory runs on
// every resolution, so each request scope gets a fresh instance.
func (c *Container) BindNamed(key, name string, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.named[namedKey{key, name}] = &binding{factory: f}
}

// BindNamedValue registers a ready value under a key/name pair.
func (c *Container) BindNamedValue(key, name string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.named[namedKey{key, name}] = &binding{value: v, resolved: true}
}

// IsBound reports whether key is bound in this container or any ancestor.
func (c *Container) IsBound(key string) bool {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		_, ok := cur.bindings[key]
		cur.mu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}

// IsBoundNamed reports whether the key/name pair is bound in this container
// or any ancestor.
func (c *Container) IsBoundNamed(key, name string) bool {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		_, ok := cur.named[namedKey{key, name}]
		cur.mu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}

// Get resolves the binding for key, walking up the parent chain.
// Returns ErrNotBound if no container in the chain has the key.
func (c *Container) Get(key string) (any, error) {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		b, ok := cur.bindings[key]
		cur.mu.RUnlock()
		if ok {
			return cur.resolve(b, c), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotBound, key)
}

// GetNamed resolves the binding for the key/name pair, walking up the
// parent chain. Returns ErrNotBound if no container in the chain has it.
func (c *Container) GetNamed(key, name string) (any, error) {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		b, ok := cur.named[namedKey{key, name}]
		cur.mu.RUnlock()
		if ok {
			return cur.resolve(b, c), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (named %q)", ErrNotBound, key, name)
}

// resolve materializes a binding. Factories receive origin, the container the
// lookup started from, so parent-bound factories see child-scope bindings.
func (c *Container) resolve(b *binding, origin *Container) any {
	c.mu.Lock()
	if b.resolved {
		v := b.value
		c.mu.Unlock()
		return v
	}
	if !b.singleton {
		f := b.factory
		c.mu.Unlock()
		return f(origin)
	}
	// Singleton: run the factory outside the lock so it may resolve other
	// bindings from the same container. The first completed result wins.
	f := b.factory
	c.mu.Unlock()

	v := f(origin)

	c.mu.Lock()
	if b.resolved {
		v = b.value
	} else {
		b.value = v
		b.resolved = true
	}
	c.mu.Unlock()
	return v
}

// Resolve is a typed wrapper around Get.
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	v, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T", ErrWrongType, key, v)
	}
	return t, nil
}

// ResolveNamed is a typed wrapper around GetNamed.
func ResolveNamed[T any](c *Container, key, name string) (T, error) {
	var zero T
	v, err := c.GetNamed(key, name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q (named %q) is %T", ErrWrongType, key, name, v)
	}
	return t, nil
}
