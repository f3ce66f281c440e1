package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nymag/nymag-fs/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/adapters/module"    //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/nymag/nymag-fs/internal/engine/access"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components used by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			access.NodeID,
			module.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*access.Factory](ctx)
			if err != nil {
				return nil, err
			}

			resolvers, err := graft.Dep[*module.Selector](ctx)
			if err != nil {
				return nil, err
			}

			spans, err := graft.Dep[*telemetry.Collector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, factory, resolvers, spans, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
