package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("write header once", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec)

		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusOK) // ignored

		require.Equal(t, http.StatusNotFound, rw.Status())
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.True(t, rw.Written())
	})

	t.Run("implicit 200 on write", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec)

		n, err := rw.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)

		require.Equal(t, http.StatusOK, rw.Status())
		require.Equal(t, int64(5), rw.Size())
		require.True(t, rw.Written())
	})

	t.Run("unwritten state", func(t *testing.T) {
		t.Parallel()

		rw := NewResponseWriter(httptest.NewRecorder())
		require.False(t, rw.Written())
		require.Equal(t, http.StatusOK, rw.Status())
		require.Equal(t, int64(0), rw.Size())
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec)
		require.Equal(t, http.ResponseWriter(rec), rw.Unwrap())
	})
}
