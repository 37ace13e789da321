package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/pipeline"
	"github.com/vk/targetplan/internal/registry"
	"github.com/vk/targetplan/internal/toolchain"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *registry.Registry
	invoker  toolchain.Invoker
	recorder *toolchain.Recorder

	results []pipeline.Result
}

// NewApp is the constructor for the main application. It loads all target
// descriptors and module manifests, and builds the sealed module registry.
// Plan manifests go to outW unless cfg.OutDir is set; logs go to logW.
//
// Configuration errors (unreadable or malformed files, duplicate module
// manifests) are start-up errors and returned here.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all configuration into the format-agnostic model first.
	model, err := loader.Load(ctx, cfg.paths()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "targets", len(model.Targets), "modules", len(model.Modules))

	reg := registry.New()
	if err := reg.PopulateFromModel(model); err != nil {
		return nil, fmt.Errorf("invalid module manifests: %w", err)
	}
	logger.Debug("Registry populated from config model.", "modules", reg.Len())

	// Hygiene problems are warnings; resolution reports them per target.
	if warnings := reg.Validate(ctx); len(warnings) > 0 {
		logger.Debug("Registry validation finished with warnings.", "count", len(warnings))
	}
	reg.Seal()

	format, err := toolchain.ParseFormat(cfg.OutFormat)
	if err != nil {
		return nil, err
	}
	recorder := &toolchain.Recorder{}
	invoker := toolchain.Multi{
		toolchain.NewManifestWriter(cfg.OutDir, outW, format),
		recorder,
	}

	return &App{
		logger:   logger,
		config:   cfg,
		model:    model,
		registry: reg,
		invoker:  invoker,
		recorder: recorder,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}

// Results returns the per-target results of the last Run.
func (a *App) Results() []pipeline.Result {
	return a.results
}

// Plans returns the plans handed to the toolchain during the last Run.
func (a *App) Plans() *toolchain.Recorder {
	return a.recorder
}
