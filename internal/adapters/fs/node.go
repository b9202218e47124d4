package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the stater Graft node.
const NodeID graft.ID = "adapter.fs.stater"

func init() {
	graft.Register(graft.Node[ports.FileStater]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileStater, error) {
			return NewStater(), nil
		},
	})
}
