package requestlog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("defaults to 200 before any write", func(t *testing.T) {
		t.Parallel()

		rw := newResponseWriter(httptest.NewRecorder())
		require.Equal(t, http.StatusOK, rw.Status())
		require.False(t, rw.Written())
	})

	t.Run("records explicit status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := newResponseWriter(rec)
		rw.WriteHeader(http.StatusTeapot)

		require.Equal(t, http.StatusTeapot, rw.Status())
		require.True(t, rw.Written())
		require.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("keeps the first status on duplicate WriteHeader", func(t *testing.T) {
		t.Parallel()

		rw := newResponseWriter(httptest.NewRecorder())
		rw.WriteHeader(http.StatusCreated)
		rw.WriteHeader(http.StatusInternalServerError)

		require.Equal(t, http.StatusCreated, rw.Status())
	})

	t.Run("implicit 200 on body write", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := newResponseWriter(rec)

		n, err := rw.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.True(t, rw.Written())
		require.Equal(t, http.StatusOK, rw.Status())
		require.Equal(t, int64(5), rw.Size())
		require.Equal(t, "hello", rec.Body.String())
	})

	t.Run("accumulates body size across writes", func(t *testing.T) {
		t.Parallel()

		rw := newResponseWriter(httptest.NewRecorder())
		rw.Write([]byte("ab"))
		rw.Write([]byte("cde"))

		require.Equal(t, int64(5), rw.Size())
	})

	t.Run("hijack unsupported by plain writers", func(t *testing.T) {
		t.Parallel()

		rw := newResponseWriter(httptest.NewRecorder())
		_, _, err := rw.Hijack()
		require.ErrorIs(t, err, http.ErrNotSupported)
		require.False(t, rw.Hijacked())
	})

	t.Run("flush passes through", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := newResponseWriter(rec)
		rw.Write([]byte("x"))
		rw.Flush()

		require.True(t, rec.Flushed)
	})

	t.Run("unwrap returns the original writer", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := newResponseWriter(rec)
		require.Equal(t, http.ResponseWriter(rec), rw.Unwrap())
	})
}
