// Package cmake implements the BuildInvoker port by running the CMake
// configure step.
package cmake

import (
	"context"
	"os"
	"os/exec"
	"sort"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker implements ports.BuildInvoker by shelling out to cmake.
type Invoker struct {
	logger ports.Logger
}

// NewInvoker creates a new CMake invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{logger: logger}
}

// Render translates the argument list into -D cache entries, preserving order.
func (i *Invoker) Render(args domain.ArgumentList) []string {
	out := make([]string, len(args))
	for idx, a := range args {
		out[idx] = "-D" + a.Flag + "=" + a.Value
	}
	return out
}

// Configure runs `cmake <flags> <sourceDir>` inside buildDir, creating the
// build directory if needed. The extra environment entries are appended to
// the inherited process environment in sorted order.
func (i *Invoker) Configure(ctx context.Context, sourceDir, buildDir string, args domain.ArgumentList, env map[string]string) error {
	if err := os.MkdirAll(buildDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create build directory")
	}

	argv := append(i.Render(args), sourceDir)

	//nolint:gosec // argv is rendered from validated descriptor metadata
	cmd := exec.CommandContext(ctx, "cmake", argv...)
	cmd.Dir = buildDir
	cmd.Env = mergeEnv(os.Environ(), env)

	i.logger.Info("running cmake in " + buildDir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		wrapped := zerr.Wrap(domain.ErrConfigureFailed, err.Error())
		return zerr.With(wrapped, "output", string(output))
	}
	return nil
}

// mergeEnv appends the extra entries to base in sorted key order so the
// child environment is deterministic.
func mergeEnv(base []string, extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := append([]string(nil), base...)
	for _, k := range keys {
		out = append(out, k+"="+extra[k])
	}
	return out
}
