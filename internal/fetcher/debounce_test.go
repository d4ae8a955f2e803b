package fetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func TestDebouncer(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("bursts coalesce into the last call", func(t *testing.T) {
		clk := clocktesting.NewFakeClock(start)
		d := NewDebouncer(clk, 300*time.Millisecond)

		var calls []string
		for _, term := range []string{"f", "fi", "fin"} {
			term := term
			d.Trigger(func() { calls = append(calls, term) })
			clk.Step(100 * time.Millisecond)
		}

		require.Empty(t, calls)
		require.True(t, d.Pending())

		clk.Step(200 * time.Millisecond)
		require.Equal(t, []string{"fin"}, calls)
		require.False(t, d.Pending())

		// Nothing left to fire
		clk.Step(time.Second)
		require.Equal(t, []string{"fin"}, calls)
	})

	t.Run("flush fires now", func(t *testing.T) {
		clk := clocktesting.NewFakeClock(start)
		d := NewDebouncer(clk, 0)

		count := 0
		d.Trigger(func() { count++ })
		require.True(t, d.Flush())
		require.Equal(t, 1, count)
		require.False(t, d.Flush())

		clk.Step(DefaultDebounce)
		require.Equal(t, 1, count)
	})

	t.Run("stop drops the pending call", func(t *testing.T) {
		clk := clocktesting.NewFakeClock(start)
		d := NewDebouncer(clk, 300*time.Millisecond)

		count := 0
		d.Trigger(func() { count++ })
		require.True(t, d.Stop())
		require.False(t, d.Stop())

		clk.Step(time.Second)
		require.Equal(t, 0, count)
	})
}
