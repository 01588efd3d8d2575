package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/matprops/internal/config"
	"github.com/vk/matprops/internal/ctxlog"
	"github.com/vk/matprops/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// New is the constructor for the main application. It wires an isolated
// logger, loads the material documents through the provided loader, and
// builds the registry. A load or build failure is returned, not paniced:
// a malformed document is a user error, not a programmer error.
func New(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	rows, err := loader.Load(ctx, appConfig.MaterialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load material documents: %w", err)
	}
	logger.Debug("Material documents translated into row model.", "rows", len(rows))

	reg, err := registry.Build(rows)
	if err != nil {
		return nil, err
	}
	logger.Debug("Material registry built.", "materials", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   appConfig,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
