package hook

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/adapters/signals"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/tracker"
)

// NodeID is the unique identifier for the hook Graft node.
const NodeID graft.ID = "engine.hook"

func init() {
	graft.Register(graft.Node[*Hook]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tracker.NodeID,
			signals.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Hook, error) {
			tr, err := graft.Dep[*tracker.Tracker](ctx)
			if err != nil {
				return nil, err
			}

			dispatcher, err := graft.Dep[ports.SignalDispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tr, dispatcher, log), nil
		},
	})
}
