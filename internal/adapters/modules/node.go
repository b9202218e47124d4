package modules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the default module registry Graft node.
// The binary registry is the default because it works for any deployed
// program; source-checkout setups swap in a SourceRegistry.
const NodeID graft.ID = "adapter.modules.registry"

func init() {
	graft.Register(graft.Node[ports.ModuleRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleRegistry, error) {
			return NewBinaryRegistry(), nil
		},
	})
}
