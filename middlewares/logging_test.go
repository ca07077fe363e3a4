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

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("passes through handler result", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		c := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

		handler := middlewares.Logging()(func(c internal.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		require.NoError(t, handler(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("propagates handler error", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/books", nil))
		cause := errors.New("boom")

		handler := middlewares.Logging()(func(c internal.Context) error {
			return cause
		})

		require.ErrorIs(t, handler(c), cause)
	})

	t.Run("skip paths short-circuit logging only", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

		called := false
		handler := middlewares.Logging(middlewares.WithLoggingSkipPaths("/health/live"))(func(c internal.Context) error {
			called = true
			return nil
		})

		require.NoError(t, handler(c))
		require.True(t, called)
	})
}
