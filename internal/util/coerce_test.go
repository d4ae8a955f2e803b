package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	t.Parallel()
	require.True(t, Coerce(ToPtr(true)))
	require.False(t, Coerce[bool](nil))
	require.Equal(t, 25, Coerce(ToPtr(25)))
	require.Equal(t, "", Coerce[string](nil))
}

func TestCoerceOr(t *testing.T) {
	t.Parallel()
	require.Equal(t, time.Kitchen, CoerceOr(nil, time.Kitchen))
	require.Equal(t, time.RFC3339, CoerceOr(ToPtr(time.RFC3339), time.Kitchen))
	require.Equal(t, "", CoerceOr(ToPtr(""), time.Kitchen))
}
