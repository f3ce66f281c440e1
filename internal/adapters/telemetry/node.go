package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the span collector Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Collector, error) {
			return NewCollector(), nil
		},
	})
}
