package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("preserves order", func(t *testing.T) {
		require.Equal(t, []int{7, 2, 0}, Map([]string{"Finance", "HR", ""}, func(s string) int {
			return len(s)
		}))
	})

	t.Run("nil input is empty output", func(t *testing.T) {
		out := Map(nil, strings.ToUpper)
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}
