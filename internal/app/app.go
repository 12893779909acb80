package app

import (
	"fmt"
	"log/slog"

	"github.com/shhac/amfconf/internal/logging"
	"github.com/shhac/amfconf/internal/model"
	"github.com/shhac/amfconf/internal/storage"
)

const appName = "amfconf"

// App wires together the logger, storage and editors.
type App struct {
	config  *Config
	logger  *slog.Logger
	storage storage.Repository
}

// New creates a new App instance with the given configuration.
func New(cfg *Config) (*App, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	logger.Info("initializing application",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", storagePath),
	)

	return NewWithDeps(cfg, logger, storage.NewJSONRepository(storagePath, logger)), nil
}

// NewWithDeps creates an App from already constructed dependencies.
func NewWithDeps(cfg *Config, logger *slog.Logger, repo storage.Repository) *App {
	return &App{
		config:  cfg,
		logger:  logger,
		storage: repo,
	}
}

func newLogger(cfg *Config) (*slog.Logger, error) {
	if cfg.LogPath != "" {
		return logging.InitFileLogger(cfg.LogPath, cfg.Debug)
	}
	return logging.InitLogger(appName, cfg.Debug)
}

// NewEditor returns an editor holding a default AMF request.
func (a *App) NewEditor() *model.Editor {
	return model.NewEditor(a.logger)
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}
