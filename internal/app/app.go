package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/ctxlog"
	"github.com/vk/dagforge/internal/target"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	errW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	targets *target.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and target
// registry, and the pipeline model already loaded.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.PipelinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline definition: %w", err)
	}
	logger.Debug("Pipeline definition loaded into unified model.", "node_count", len(model.Pipeline.Nodes))

	return &App{
		outW:    outW,
		errW:    errW,
		logger:  logger,
		config:  cfg,
		model:   model,
		targets: target.New(),
	}, nil
}

// Model returns the loaded pipeline model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
