package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keelframework/keel/internal"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("constructors", func(t *testing.T) {
		t.Parallel()

		err := internal.ErrNotFound("missing",
			internal.WithErrorCode("resource_missing"),
			internal.WithRequestID("req-1"),
		)
		require.Equal(t, http.StatusNotFound, err.StatusCode())
		require.Equal(t, "Not Found", err.StatusText())
		require.Equal(t, "missing", err.Error())
		require.Equal(t, "resource_missing", err.ErrorCode)
		require.Equal(t, "req-1", err.RequestID)
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("db down")
		err := internal.ErrInternal("oops", internal.WithError(cause))
		require.ErrorIs(t, err, cause)
	})
}

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		require.True(t, internal.IsHTTPError(internal.ErrBadRequest("nope")))
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("handler failed: %w", internal.ErrConflict("exists"))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(errors.New("plain")))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("extracts from chain", func(t *testing.T) {
		t.Parallel()

		httpErr := internal.ErrForbidden("no access")
		got := internal.AsHTTPError(fmt.Errorf("wrapped: %w", httpErr))
		require.Same(t, httpErr, got)
	})

	t.Run("nil for non-http errors", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain")))
		require.Nil(t, internal.AsHTTPError(nil))
	})
}
