package util

import (
	"os"
	"strings"
)

// GetEnvDefault reads an environment variable, trimming whitespace. Unset and blank values yield fallback.
func GetEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
