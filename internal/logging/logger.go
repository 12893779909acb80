package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the maximum log file size before rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// InitLogger initializes a structured logger writing JSON to the
// platform-specific log file for appName:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// When debug is true, the logger uses DEBUG level and includes source locations.
func InitLogger(appName string, debug bool) (*slog.Logger, error) {
	logPath, err := getLogFilePath(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get log file path: %w", err)
	}
	return InitFileLogger(logPath, debug)
}

// InitFileLogger initializes a structured logger writing JSON to logPath,
// rotating the file first if it has grown past the size limit.
func InitFileLogger(logPath string, debug bool) (*slog.Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	return newJSONLogger(logFile, debug), nil
}

func newJSONLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

// rotateIfNeeded checks the log file size and rotates if it exceeds maxLogSize.
// Rotation renames current.log → current.log.1, .1 → .2, etc., keeping maxLogBackups.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Size() < maxLogSize {
		return nil
	}

	for i := maxLogBackups; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", logPath, i)
		if i == maxLogBackups {
			os.Remove(src) // Delete oldest
			continue
		}
		os.Rename(src, fmt.Sprintf("%s.%d", logPath, i+1))
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	return nil
}

// getLogFilePath returns the platform-specific log file path.
func getLogFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), nil
	case "linux":
		return filepath.Join(homeDir, ".local", "state", appName, appName+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "Logs", appName+".log"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// NewNopLogger returns a logger that discards everything, for tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
