package tracker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/scanner"
)

// NodeID is the unique identifier for the tracker Graft node.
const NodeID graft.ID = "engine.tracker"

func init() {
	graft.Register(graft.Node[*Tracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scanner.NodeID,
			fs.NodeID,
		},
		Run: func(ctx context.Context) (*Tracker, error) {
			app, err := graft.Dep[*scanner.App](ctx)
			if err != nil {
				return nil, err
			}

			stater, err := graft.Dep[ports.FileStater](ctx)
			if err != nil {
				return nil, err
			}

			return New(app, scanner.NewScanner(stater), stater), nil
		},
	})
}
