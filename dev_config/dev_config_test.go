package dev_config

import (
	"testing"

	"github.com/rmorlok/graphbrowser/internal/config"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"github.com/stretchr/testify/require"
)

func Test_DevConfigValid(t *testing.T) {
	// Loading also checks the schema so the dev configs can't drift from it
	for _, path := range []string{"./default.yaml", "./static.yaml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := config.LoadConfig(path)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
		})
	}
}

func Test_DevConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("./default.yaml")
	require.NoError(t, err)

	root := cfg.GetRoot()
	require.Equal(t, sconfig.IdentityTypeOAuth2, root.Identity.GetType())
	require.Equal(t, 100, root.Graph.GetPageSize())
	require.Equal(t, sconfig.DefaultSearchDebounce, root.Search.GetDebounce())
	require.True(t, cfg.IsDebugMode())
}
