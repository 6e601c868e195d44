package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mason/internal/adapters/checksum"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/cmake"      //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/recipefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/adapters/registry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mason/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			recipefile.NodeID,
			config.NodeID,
			cmake.NodeID,
			checksum.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	recipeRegistry, err := graft.Dep[ports.RecipeRegistry](ctx)
	if err != nil {
		return nil, err
	}

	recipeSource, err := graft.Dep[ports.RecipeSource](ctx)
	if err != nil {
		return nil, err
	}

	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	invoker, err := graft.Dep[ports.BuildInvoker](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.IntegrityVerifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(recipeRegistry, recipeSource, configLoader, invoker, verifier, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: application, Logger: log}, nil
}
