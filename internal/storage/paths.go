package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".amfconf"

// DefaultStoragePath returns the default storage location
// Platform-specific paths:
//   - macOS/Linux: ~/.amfconf
//   - Windows: %USERPROFILE%\.amfconf
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
