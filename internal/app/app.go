package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/schoolregistry/internal/config"
	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in       io.Reader
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It loads the settings
// files named in appConfig, merges them under the explicit values and returns
// an App with its own isolated logger and an empty registry. Logs go to logW
// so they never interleave with the menu written to outW.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	// Use the explicit settings until the files are merged in.
	bootLogger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), bootLogger)

	var settings *config.Model
	if len(appConfig.SettingsPaths) > 0 {
		var err error
		settings, err = loader.Load(ctx, appConfig.SettingsPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		bootLogger.Debug("Settings loaded.", "sources", settings.Sources)
	}

	cfg, err := appConfig.withSettings(settings)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		in:       in,
		outW:     outW,
		logger:   logger,
		registry: registry.New(),
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Config returns the effective configuration after merging settings files.
func (a *App) Config() Config {
	return *a.config
}
