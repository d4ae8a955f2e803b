package pagination

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageResult(t *testing.T) {
	t.Run("cursor drives has more", func(t *testing.T) {
		p := NewPageResult([]string{"a", "b"}, "https://graph.microsoft.com/v1.0/sites?$skiptoken=abc")
		require.True(t, p.HasMore)
		require.Equal(t, []string{"a", "b"}, p.Results)
		require.NoError(t, p.Error)
	})

	t.Run("no cursor", func(t *testing.T) {
		p := NewPageResult([]string{"a"}, "")
		require.False(t, p.HasMore)
		require.Equal(t, "", p.Cursor)
	})
}

func TestErrorPageResult(t *testing.T) {
	err := errors.New("boom")
	p := ErrorPageResult[int](err)
	require.Equal(t, err, p.Error)
	require.False(t, p.HasMore)
	require.Empty(t, p.Results)
}

func TestPageResultFilter(t *testing.T) {
	p := NewPageResult([]string{"Finance", "HR", "finance-archive"}, "next")
	filtered := p.Filter(func(s string) bool {
		return strings.Contains(strings.ToLower(s), "finance")
	})

	require.Equal(t, []string{"Finance", "finance-archive"}, filtered.Results)
	require.True(t, filtered.HasMore)
	require.Equal(t, "next", filtered.Cursor)

	// Original is unchanged
	require.Len(t, p.Results, 3)

	none := p.Filter(func(string) bool { return false })
	require.NotNil(t, none.Results)
	require.Empty(t, none.Results)
}

func TestMapPage(t *testing.T) {
	p := NewPageResult([]int{1, 2, 3}, "")
	m := MapPage(p, func(i int) int { return i * 10 })
	require.Equal(t, []int{10, 20, 30}, m.Results)
	require.False(t, m.HasMore)
}
