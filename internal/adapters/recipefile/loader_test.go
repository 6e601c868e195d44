package recipefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/recipefile"
	"go.trai.ch/mason/internal/core/domain"
)

func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleRecipe = `
version: "1"
package: icepack
homepage: https://example.org/icepack
git: https://example.org/icepack.git
maintainers: [frost]
versions:
  - id: develop
    branch: main
  - id: "1.2.0"
    sha256: 0f82a258304813e90355cf28a266bee3c0cf4376885e255a2afbd8b380d0cbd3
variants:
  - name: shared
    default: true
    description: Build shared libraries
    flag: BUILD_SHARED_LIBS
  - name: trace
    description: Enable tracing
    flag: ICE_TRACE
dependencies:
  - package: mpi
  - package: cmake
    constraint: "3.1:"
    kind: build
  - package: tracelib
    when:
      variant: trace
  - package: python
    constraint: "2.7:2.8"
    when:
      variant: shared
      versions: ":1.0"
toolchain:
  dependency: mpi
  cc: bin/mpicc
  cxx: bin/mpicxx
environment:
  prefixVar: ICE_PREFIX
  binVar: ICE_BIN
  build:
    ICE_BUILD_MODE: fast
`

func TestLoader_Load(t *testing.T) {
	loader := recipefile.NewLoader()

	t.Run("loads a complete recipe", func(t *testing.T) {
		desc, err := loader.Load(writeRecipe(t, sampleRecipe))
		require.NoError(t, err)

		assert.Equal(t, "icepack", desc.Name())
		assert.Equal(t, "https://example.org/icepack", desc.Homepage())
		assert.Equal(t, []string{"frost"}, desc.Maintainers())

		require.Len(t, desc.Versions(), 2)
		v, ok := desc.FindVersion("develop")
		require.True(t, ok)
		assert.Equal(t, "main", v.Branch)

		variants := desc.Variants()
		require.Len(t, variants, 2)
		assert.Equal(t, "shared", variants[0].Name.String())
		assert.True(t, variants[0].Default)
		assert.Equal(t, "BUILD_SHARED_LIBS", variants[0].Flag)

		deps := desc.Dependencies()
		require.Len(t, deps, 4)
		assert.Equal(t, domain.KindLink, deps[0].Kind)
		assert.Nil(t, deps[0].Condition)
		assert.Equal(t, domain.KindBuild, deps[1].Kind)
		assert.Equal(t, "3.1:", deps[1].Constraint.String())
		assert.Equal(t, "+trace", deps[2].Condition.String())
		assert.Equal(t, "(+shared and @:1.0)", deps[3].Condition.String())
	})

	t.Run("resolved recipe emits compiler and variant flags", func(t *testing.T) {
		desc, err := loader.Load(writeRecipe(t, sampleRecipe))
		require.NoError(t, err)

		r, err := desc.Resolve("1.2.0", map[string]bool{"trace": true}, map[string]string{
			"mpi":      "/opt/mpi",
			"cmake":    "/opt/cmake",
			"tracelib": "/opt/tracelib",
		})
		require.NoError(t, err)

		args, err := desc.BuildArguments(r)
		require.NoError(t, err)
		assert.Equal(t, domain.ArgumentList{
			{Flag: "CMAKE_C_COMPILER", Value: "/opt/mpi/bin/mpicc"},
			{Flag: "CMAKE_CXX_COMPILER", Value: "/opt/mpi/bin/mpicxx"},
			{Flag: "BUILD_SHARED_LIBS", Value: "YES"},
			{Flag: "ICE_TRACE", Value: "YES"},
		}, args)
	})

	t.Run("fails when the file is missing", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorContains(t, err, "failed to read recipe file")
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		_, err := loader.Load(writeRecipe(t, "package: [broken\n"))
		require.ErrorContains(t, err, "failed to parse recipe file")
	})

	t.Run("rejects an unknown dependency kind", func(t *testing.T) {
		_, err := loader.Load(writeRecipe(t, `
package: icepack
versions: [{id: "1.0"}]
dependencies:
  - package: mpi
    kind: runtime
`))
		require.ErrorContains(t, err, "unknown dependency kind")
	})

	t.Run("rejects an empty when clause", func(t *testing.T) {
		_, err := loader.Load(writeRecipe(t, `
package: icepack
versions: [{id: "1.0"}]
dependencies:
  - package: mpi
    when: {}
`))
		require.ErrorContains(t, err, "empty when clause")
	})

	t.Run("rejects a boundless constraint", func(t *testing.T) {
		_, err := loader.Load(writeRecipe(t, `
package: icepack
versions: [{id: "1.0"}]
dependencies:
  - package: mpi
    constraint: ":"
`))
		require.ErrorContains(t, err, "constraint has no bounds")
	})

	t.Run("rejects a recipe without a package name", func(t *testing.T) {
		_, err := loader.Load(writeRecipe(t, "versions: [{id: \"1.0\"}]\n"))
		require.ErrorContains(t, err, domain.ErrInvalidDescriptor.Error())
	})
}
