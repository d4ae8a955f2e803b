package config

import (
	"log/slog"

	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

type C interface {
	// Validate checks that the configuration is valid
	Validate() error

	// GetRoot gets the root of the configuration; the data loaded from a configuration file
	GetRoot() *sconfig.Root

	// IsDebugMode tells the system if debug flags have been passed when running this service
	IsDebugMode() bool

	// GetRootLogger returns the root logger instance configured for the application. This will always
	// return a logger, defaulting to a none logger if nothing is configured.
	GetRootLogger() *slog.Logger
}
