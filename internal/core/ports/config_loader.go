package ports

import "go.trai.ch/mason/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build configuration from the given file path.
	Load(path string) (*domain.BuildConfig, error)
}
