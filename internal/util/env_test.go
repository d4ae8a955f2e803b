package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvDefault(t *testing.T) {
	const key = "GRAPHBROWSER_UTIL_TEST_URL"
	const fallback = "http://localhost:8080"

	t.Run("unset", func(t *testing.T) {
		require.Equal(t, fallback, GetEnvDefault(key, fallback))
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(key, "http://browser.internal:9000")
		require.Equal(t, "http://browser.internal:9000", GetEnvDefault(key, fallback))
	})

	t.Run("blank", func(t *testing.T) {
		t.Setenv(key, "  ")
		require.Equal(t, fallback, GetEnvDefault(key, fallback))
	})

	t.Run("trimmed", func(t *testing.T) {
		t.Setenv(key, " http://browser.internal ")
		require.Equal(t, "http://browser.internal", GetEnvDefault(key, fallback))
	})
}
