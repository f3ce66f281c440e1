package module

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/nymag/nymag-fs/internal/adapters/fs"
	"github.com/nymag/nymag-fs/internal/core/ports"
)

// NodeID is the unique identifier for the module resolver selector Graft node.
const NodeID graft.ID = "adapter.module_resolver"

func init() {
	graft.Register(graft.Node[*Selector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Selector, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(Default, NewPluginResolver(fsys)), nil
		},
	})
}
