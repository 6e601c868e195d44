// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mason/internal/adapters/checksum"
	_ "go.trai.ch/mason/internal/adapters/cmake"
	_ "go.trai.ch/mason/internal/adapters/config"
	_ "go.trai.ch/mason/internal/adapters/logger"
	_ "go.trai.ch/mason/internal/adapters/recipefile"
	_ "go.trai.ch/mason/internal/adapters/registry"
	// Register app nodes.
	_ "go.trai.ch/mason/internal/app"
)
