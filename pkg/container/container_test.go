package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelframework/keel/pkg/container"
)

func TestContainerBindings(t *testing.T) {
	t.Parallel()

	t.Run("value binding resolves to the bound value", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		c.BindValue("answer", 42)

		v, err := container.Resolve[int](c, "answer")
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})

	t.Run("factory binding runs on every resolution", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		calls := 0
		c.Bind("counter", func(*container.Container) any {
			calls++
			return calls
		})

		first, err := container.Resolve[int](c, "counter")
		require.NoError(t, err)
		second, err := container.Resolve[int](c, "counter")
		require.NoError(t, err)
		require.Equal(t, 1, first)
		require.Equal(t, 2, second)
	})

	t.Run("singleton binding memoizes the first result", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		calls := 0
		c.BindSingleton("once", func(*container.Container) any {
			calls++
			return calls
		})

		first, err := container.Resolve[int](c, "once")
		require.NoError(t, err)
		second, err := container.Resolve[int](c, "once")
		require.NoError(t, err)
		require.Equal(t, 1, first)
		require.Equal(t, 1, second)
		require.Equal(t, 1, calls)
	})

	t.Run("missing binding returns ErrNotBound", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		_, err := c.Get("nope")
		require.ErrorIs(t, err, container.ErrNotBound)
	})

	t.Run("resolve with wrong type returns ErrWrongType", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		c.BindValue("s", "hello")

		_, err := container.Resolve[int](c, "s")
		require.ErrorIs(t, err, container.ErrWrongType)
	})

	t.Run("named bindings coexist under one key", func(t *testing.T) {
		t.Parallel()

		c := container.New()
		c.BindNamedValue("controller", "users", "users-controller")
		c.BindNamedValue("controller", "admin", "admin-controller")

		users, err := container.ResolveNamed[string](c, "controller", "users")
		require.NoError(t, err)
		admin, err := container.ResolveNamed[string](c, "controller", "admin")
		require.NoError(t, err)
		require.Equal(t, "users-controller", users)
		require.Equal(t, "admin-controller", admin)
		require.True(t, c.IsBoundNamed("controller", "users"))
		require.False(t, c.IsBoundNamed("controller", "billing"))
	})
}

func TestContainerScopes(t *testing.T) {
	t.Parallel()

	t.Run("child falls back to parent on miss", func(t *testing.T) {
		t.Parallel()

		parent := container.New()
		parent.BindValue("shared", "from-parent")

		child := parent.Child()
		v, err := container.Resolve[string](child, "shared")
		require.NoError(t, err)
		require.Equal(t, "from-parent", v)
	})

	t.Run("child writes do not leak into the parent", func(t *testing.T) {
		t.Parallel()

		parent := container.New()
		child := parent.Child()
		child.BindValue("request", "scoped")

		_, err := parent.Get("request")
		require.ErrorIs(t, err, container.ErrNotBound)
		require.True(t, child.IsBound("request"))
		require.False(t, parent.IsBound("request"))
	})

	t.Run("child shadowing overrides parent binding", func(t *testing.T) {
		t.Parallel()

		parent := container.New()
		parent.BindValue("who", "parent")
		child := parent.Child()
		child.BindValue("who", "child")

		v, err := container.Resolve[string](child, "who")
		require.NoError(t, err)
		require.Equal(t, "child", v)
	})

	t.Run("parent factory sees child scope bindings", func(t *testing.T) {
		t.Parallel()

		parent := container.New()
		parent.Bind("greeting", func(c *container.Container) any {
			name, err := container.Resolve[string](c, "name")
			if err != nil {
				return "hello, stranger"
			}
			return "hello, " + name
		})

		child := parent.Child()
		child.BindValue("name", "alice")

		v, err := container.Resolve[string](child, "greeting")
		require.NoError(t, err)
		require.Equal(t, "hello, alice", v)
	})
}
