// Package app implements the application layer for fsprobe.
package app

import (
	"log/slog"
	"sync"

	"github.com/nymag/nymag-fs/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/adapters/module"    //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/nymag/nymag-fs/internal/engine/access"
	"go.trai.ch/zerr"
)

// ResolverSelector picks a module resolver by configured kind.
type ResolverSelector interface {
	Select(kind string) (ports.ModuleResolver, error)
}

// logSettings is implemented by loggers whose output can be reconfigured.
type logSettings interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// Options are the command line overrides applied on top of the config file.
type Options struct {
	// ConfigPath is the config file to load. Empty means the default file.
	ConfigPath string
	// JSON forces JSON log output.
	JSON bool
	// Verbose forces debug logging.
	Verbose bool
	// Trace records a span per uncached filesystem access.
	Trace bool
}

// App owns the configured access layer used by the CLI.
type App struct {
	configLoader ports.ConfigLoader
	factory      *access.Factory
	resolvers    ResolverSelector
	spans        *telemetry.Collector
	logger       ports.Logger

	mu     sync.RWMutex
	config *domain.Config
	access *access.Access
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory *access.Factory,
	resolvers ResolverSelector,
	spans *telemetry.Collector,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		resolvers:    resolvers,
		spans:        spans,
		logger:       log,
	}
}

// Configure loads the configuration and builds the access layer from it.
// It may be called again to rebuild the layer with fresh caches.
func (a *App) Configure(opts Options) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.JSON {
		cfg.Log.JSON = true
	}
	if opts.Verbose {
		cfg.Log.Level = domain.LogLevelDebug
	}

	if err := a.applyLogSettings(cfg.Log); err != nil {
		return err
	}

	resolver, err := a.resolvers.Select(cfg.Resolver)
	if err != nil {
		return err
	}

	accessOpts := []access.Option{access.WithYAMLExtensions(cfg.YAMLExtensions...)}
	if opts.Trace {
		a.spans.Reset()
		accessOpts = append(accessOpts, access.WithTracerProvider(a.spans.Provider()))
	}
	acc := a.factory.New(resolver, accessOpts...)

	a.mu.Lock()
	a.config = cfg
	a.access = acc
	a.mu.Unlock()

	a.logger.Debug("access layer configured", "resolver", cfg.Resolver, "source", cfg.Source, "trace", opts.Trace)
	return nil
}

func (a *App) applyLogSettings(cfg domain.LogConfig) error {
	settings, ok := a.logger.(logSettings)
	if !ok {
		return nil
	}

	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	settings.SetLevel(level)
	settings.SetJSON(cfg.JSON)
	return nil
}

// Config returns the active configuration, or nil before Configure.
func (a *App) Config() *domain.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Access returns the configured access layer.
// Before Configure it returns a layer built from the default configuration. If the
// default resolver cannot be selected the failure is logged and modules never resolve.
func (a *App) Access() ports.Access {
	return a.current()
}

func (a *App) current() *access.Access {
	a.mu.RLock()
	acc := a.access
	a.mu.RUnlock()
	if acc != nil {
		return acc
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.access == nil {
		cfg := domain.DefaultConfig()
		resolver, err := a.resolvers.Select(cfg.Resolver)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "select default resolver"))
			resolver = module.NewRegistry()
		}
		a.config = cfg
		a.access = a.factory.New(resolver, access.WithYAMLExtensions(cfg.YAMLExtensions...))
	}
	return a.access
}

// Stats returns the number of cached entries per operation name.
func (a *App) Stats() map[string]int {
	stats := a.current().Stats()
	out := make(map[string]int, len(stats))
	for op, n := range stats {
		out[string(op)] = n
	}
	return out
}

// Reset drops every cached result of the access layer.
func (a *App) Reset() {
	a.current().Reset()
}

// Spans returns the spans recorded since the last traced Configure.
func (a *App) Spans() []domain.SpanSummary {
	return a.spans.Summaries()
}
