package access

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nymag/nymag-fs/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"github.com/nymag/nymag-fs/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"github.com/nymag/nymag-fs/internal/adapters/yamldoc" //nolint:depguard // Wired in engine wiring
	"github.com/nymag/nymag-fs/internal/core/ports"
)

// NodeID is the unique identifier for the access factory Graft node.
const NodeID graft.ID = "engine.access"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			yamldoc.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.DocumentParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(fsys, parser, log), nil
		},
	})
}
