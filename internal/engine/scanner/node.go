package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/modules"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the baseline service Graft node.
const NodeID graft.ID = "engine.scanner"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			modules.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			stater, err := graft.Dep[ports.FileStater](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.ModuleRegistry](ctx)
			if err != nil {
				return nil, err
			}

			return NewApp(NewScanner(stater), registry), nil
		},
	})
}
