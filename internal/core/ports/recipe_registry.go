package ports

import "go.trai.ch/mason/internal/core/domain"

// RecipeRegistry provides access to the known package descriptors.
//
//go:generate mockgen -source=recipe_registry.go -destination=mocks/mock_recipe_registry.go -package=mocks
type RecipeRegistry interface {
	// Get returns the descriptor for the named package.
	Get(name string) (*domain.Descriptor, error)

	// List returns all registered descriptors in registration order.
	List() []*domain.Descriptor
}
