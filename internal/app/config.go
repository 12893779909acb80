package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StoragePath is the directory where stored elements are kept
	StoragePath string

	// LogPath overrides the platform log file location
	LogPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		StoragePath: "", // Will use DefaultStoragePath() from storage package
	}
}

// ConfigFromEnv creates a configuration from environment variables after
// loading any of envFiles that exist. Variables already set in the
// environment take precedence over file values.
// Reads AMFCONF_DEBUG, AMFCONF_STORAGE_PATH and AMFCONF_LOG_PATH.
func ConfigFromEnv(envFiles ...string) *Config {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	cfg := DefaultConfig()

	if debugStr := os.Getenv("AMFCONF_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if storagePath := os.Getenv("AMFCONF_STORAGE_PATH"); storagePath != "" {
		cfg.StoragePath = storagePath
	}

	if logPath := os.Getenv("AMFCONF_LOG_PATH"); logPath != "" {
		cfg.LogPath = logPath
	}

	return cfg
}
