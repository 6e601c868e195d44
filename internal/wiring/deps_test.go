package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/app"
	_ "go.trai.ch/mason/internal/wiring" // Register providers
)

// TestComponentGraph verifies that the registered Graft nodes form a
// resolvable graph: a missing or renamed node ID fails here instead of at
// startup.
func TestComponentGraph(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
