package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/featuredag/internal/ctxlog"
	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/metrics"
	"github.com/specialistvlad/featuredag/internal/registry"
)

// App encapsulates the loaded specification and the feature registry.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	spec     *depspec.Spec
	registry *registry.Registry
	metrics  *metrics.Metrics
}

// NewApp builds an App. Command output goes to outW, logs to logW. When no
// modules are given the core modules are registered.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Creating new application instance.")

	if len(modules) == 0 {
		modules = CoreModules()
	}

	spec, err := loadSpec(ctx, cfg.SpecPaths, modules)
	if err != nil {
		return nil, err
	}

	reg := registry.Build(modules...)
	logger.Debug("Registry built.", "libraries", len(reg.Libraries()), "features", reg.FeatureCount())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		spec:     spec,
		registry: reg,
		metrics:  metrics.New(),
	}, nil
}

// loadSpec reads the configured specification paths, or falls back to the
// specifications bundled with the modules.
func loadSpec(ctx context.Context, paths []string, modules []registry.Module) (*depspec.Spec, error) {
	if len(paths) > 0 {
		return depspec.Load(ctx, paths...)
	}

	var maps []*depspec.Map
	for _, mod := range modules {
		p, ok := mod.(SpecProvider)
		if !ok {
			continue
		}
		m, err := p.Dependencies()
		if err != nil {
			return nil, fmt.Errorf("loading bundled dependencies of %T: %w", mod, err)
		}
		maps = append(maps, m)
	}
	ctxlog.FromContext(ctx).Debug("Using bundled specifications.", "modules", len(maps))
	return &depspec.Spec{Deps: depspec.Merge(maps...), Settings: map[string]string{}}, nil
}

// Metrics returns the collectors updated by Run.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Registry returns the sealed feature registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
