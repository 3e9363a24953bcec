package serrors_test

import (
	"errors"
	"testing"

	"swaggerhunter/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("open failed")

	e1 := serrors.With(serrors.ErrNotFound, "file not found: %s", "domains.txt")
	require.Equal(t, "file not found: domains.txt", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "reading list")
	require.Equal(t, "reading list: open failed", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrBadRequest)
	require.Equal(t, "BAD_REQUEST", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest, "errors.Is should not match a different kind")
}

func TestAsMatchesWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "scanning")

	var ce customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, "root cause", ce.msg)
}

func TestUnwrapReturnsCause(t *testing.T) {
	base := errors.New("disk full")
	e := serrors.Wrap(serrors.ErrInternal, base, "appending finding")

	require.Equal(t, base, errors.Unwrap(e))
}
