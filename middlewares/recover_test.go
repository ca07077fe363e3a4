package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelframework/keel/internal"
	"github.com/keelframework/keel/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("converts panic to PanicError", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("boom")
		})

		err := handler(c)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
	})

	t.Run("disabled stack trace", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("boom")
		})

		err := handler(c)
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("passes through normal errors", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		cause := errors.New("db down")

		handler := middlewares.Recover()(func(c internal.Context) error {
			return cause
		})

		err := handler(c)
		require.ErrorIs(t, err, cause)
		require.False(t, middlewares.IsPanicError(err))
	})

	t.Run("no panic no error", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(c internal.Context) error {
			return nil
		})

		require.NoError(t, handler(c))
	})
}
