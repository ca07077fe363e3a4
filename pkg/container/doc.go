// Package container provides explicit dependency-injection containers.
//
// A Container is a string-keyed registry of bindings: plain values, factory
// functions resolved on every lookup, and singleton factories resolved once.
// Named bindings pair a key with a qualifier so several implementations can
// coexist under one key (the server uses this for controllers).
//
// Containers form scopes: Child returns a container that reads through to
// its parent chain on miss but keeps its own writes local. The server creates
// one child per request so per-request bindings never leak between in-flight
// requests.
//
// A Manager owns containers by name and creates them lazily on first
// reference. The unnamed container is shared under the "default" name.
// There is no teardown hook: containers live until removed explicitly or the
// process exits.
//
// # Quick Start
//
//	m := container.NewManager()
//	c := m.Default()
//	c.BindSingleton("repo", func(c *container.Container) any {
//	    return NewRepository()
//	})
//
//	repo, err := container.Resolve[*Repository](c, "repo")
//
// Resolution never creates bindings; a miss is reported as ErrNotBound.
// Manager lookups are the opposite: absence is resolved by creation, never
// by fault.
package container
