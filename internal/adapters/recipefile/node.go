package recipefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/core/ports"
)

// NodeID is the unique identifier for the recipe source Graft node.
const NodeID graft.ID = "adapter.recipefile"

func init() {
	graft.Register(graft.Node[ports.RecipeSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecipeSource, error) {
			return NewLoader(), nil
		},
	})
}
