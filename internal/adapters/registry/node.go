package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/recipes/pism"
)

// NodeID is the unique identifier for the recipe registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.RecipeRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecipeRegistry, error) {
			pismDesc, err := pism.New()
			if err != nil {
				return nil, err
			}
			return New(pismDesc)
		},
	})
}
