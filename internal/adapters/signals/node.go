package signals

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the signal dispatcher Graft node.
const NodeID graft.ID = "adapter.signals"

func init() {
	graft.Register(graft.Node[ports.SignalDispatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SignalDispatcher, error) {
			return NewDispatcher(), nil
		},
	})
}
