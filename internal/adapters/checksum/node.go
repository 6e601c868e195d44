package checksum

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the unique identifier for the integrity verifier Graft node.
const NodeID graft.ID = "adapter.checksum"

func init() {
	graft.Register(graft.Node[ports.IntegrityVerifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.IntegrityVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
