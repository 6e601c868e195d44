package ports

import "go.trai.ch/mason/internal/core/domain"

// RecipeSource loads a package descriptor from a recipe file.
//
//go:generate mockgen -source=recipe_source.go -destination=mocks/mock_recipe_source.go -package=mocks
type RecipeSource interface {
	// Load reads and validates the recipe at the given path.
	Load(path string) (*domain.Descriptor, error)
}
