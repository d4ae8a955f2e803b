package config

import (
	"log/slog"
	"os"

	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

const DebugModeEnvVar = "GRAPHBROWSER_DEBUG_MODE"

type config struct {
	root *sconfig.Root
}

func (c *config) Validate() error {
	return c.root.Validate()
}

func (c *config) GetRoot() *sconfig.Root {
	if c == nil {
		return nil
	}

	return c.root
}

func (c *config) IsDebugMode() bool {
	if c != nil && c.root != nil && c.root.Server.Debug {
		return true
	}

	return os.Getenv(DebugModeEnvVar) == "true"
}

func (c *config) GetRootLogger() *slog.Logger {
	return c.root.GetRootLogger()
}
