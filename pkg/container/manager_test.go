package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelframework/keel/pkg/container"
)

func TestManager(t *testing.T) {
	t.Parallel()

	t.Run("default container exists from the start", func(t *testing.T) {
		t.Parallel()

		m := container.NewManager()
		require.True(t, m.Exists(container.DefaultName))
		require.Same(t, m.Default(), m.Container(""))
		require.Same(t, m.Default(), m.Container(container.DefaultName))
	})

	t.Run("named container is created lazily and memoized", func(t *testing.T) {
		t.Parallel()

		m := container.NewManager()
		require.False(t, m.Exists("tenant-a"))

		c := m.Container("tenant-a")
		require.NotNil(t, c)
		require.True(t, m.Exists("tenant-a"))
		require.Same(t, c, m.Container("tenant-a"))
	})

	t.Run("containers are isolated by name", func(t *testing.T) {
		t.Parallel()

		m := container.NewManager()
		m.Container("a").BindValue("k", "a-value")

		require.False(t, m.Container("b").IsBound("k"))
	})

	t.Run("remove drops the container", func(t *testing.T) {
		t.Parallel()

		m := container.NewManager()
		old := m.Container("temp")
		old.BindValue("k", 1)

		m.Remove("temp")
		require.False(t, m.Exists("temp"))

		fresh := m.Container("temp")
		require.NotSame(t, old, fresh)
		require.False(t, fresh.IsBound("k"))
	})
}
