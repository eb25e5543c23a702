package requestlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Parallel()

	t.Run("set and value inside a wrapped request", func(t *testing.T) {
		t.Parallel()

		ctx := withState(context.Background(), newState())
		Set(ctx, "k", 42)
		require.Equal(t, 42, Value(ctx, "k"))
	})

	t.Run("no-op outside a wrapped request", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		Set(ctx, "k", 42)
		require.Nil(t, Value(ctx, "k"))
	})

	t.Run("take consumes exactly once", func(t *testing.T) {
		t.Parallel()

		bag := newState()
		ctx := withState(context.Background(), bag)
		SetErrorInfo(ctx, map[string]any{"code": "X"})

		first := bag.take(DefaultErrorInfoKey)
		require.NotNil(t, first)
		require.Nil(t, bag.take(DefaultErrorInfoKey))
		require.Nil(t, Value(ctx, DefaultErrorInfoKey))
	})

	t.Run("overwrite keeps the last value", func(t *testing.T) {
		t.Parallel()

		ctx := withState(context.Background(), newState())
		Set(ctx, "k", "old")
		Set(ctx, "k", "new")
		require.Equal(t, "new", Value(ctx, "k"))
	})
}

func TestProjectError(t *testing.T) {
	t.Parallel()

	mapping := map[string]string{"code": "error_code", "message": "error_message"}

	t.Run("nil payload means no error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, projectError(nil, mapping))
	})

	t.Run("empty payload projects nulls", func(t *testing.T) {
		t.Parallel()

		out, ok := projectError(map[string]any{}, mapping).(map[string]any)
		require.True(t, ok)
		require.Len(t, out, 2)
		require.Nil(t, out["error_code"])
		require.Nil(t, out["error_message"])
	})

	t.Run("non-mapping payload degrades to nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, projectError("boom", mapping))
	})

	t.Run("projects and renames", func(t *testing.T) {
		t.Parallel()

		out, ok := projectError(map[string]any{"code": "C", "extra": true}, mapping).(map[string]any)
		require.True(t, ok)
		require.Equal(t, "C", out["error_code"])
		require.Nil(t, out["error_message"])
		require.NotContains(t, out, "extra")
	})
}

func TestEncodeRecord(t *testing.T) {
	t.Parallel()

	line, err := encodeRecord(map[string]any{"msg": "héllo <wörld>", "n": 7})
	require.NoError(t, err)
	require.NotContains(t, line, "\n")
	require.Contains(t, line, "héllo <wörld>", "non-ASCII and markup stay literal")
	require.Contains(t, line, `"n":7`)
}
