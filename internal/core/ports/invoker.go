package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// BuildInvoker hands an argument list to the wrapped build tool.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type BuildInvoker interface {
	// Render translates the argument list into the build tool's
	// command-line form, preserving order.
	Render(args domain.ArgumentList) []string

	// Configure runs the build tool's configure step in buildDir against
	// sourceDir, passing the arguments verbatim and injecting env into the
	// tool's process environment.
	Configure(ctx context.Context, sourceDir, buildDir string, args domain.ArgumentList, env map[string]string) error
}
