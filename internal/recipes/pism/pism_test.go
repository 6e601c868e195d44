package pism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/recipes/pism"
)

// variantNames lists the PISM variants in declaration order; the emitted
// argument order follows it.
var variantNames = []string{
	"extra", "shared", "python", "icebin", "proj", "parallel-netcdf4",
	"parallel-netcdf3", "parallel-hdf5", "doc", "examples", "everytrace",
}

func allOff() map[string]bool {
	variants := make(map[string]bool, len(variantNames))
	for _, name := range variantNames {
		variants[name] = false
	}
	return variants
}

func TestPism_Metadata(t *testing.T) {
	desc, err := pism.New()
	require.NoError(t, err)

	assert.Equal(t, "pism", desc.Name())
	assert.Len(t, desc.Versions(), 6)

	v, ok := desc.FindVersion("2.0.2")
	require.True(t, ok)
	assert.Equal(t, "f316cc50d6a7cd77df9fc416c90d7c16debdc8ea050ef57deb621e1d72440403", v.SHA256)

	dev, ok := desc.FindVersion("develop")
	require.True(t, ok)
	assert.Equal(t, "dev", dev.Branch)
	assert.Empty(t, dev.SHA256)

	variants := desc.Variants()
	require.Len(t, variants, len(variantNames))
	for i, v := range variants {
		assert.Equal(t, variantNames[i], v.Name.String())
	}
}

func TestPism_BuildArguments(t *testing.T) {
	desc, err := pism.New()
	require.NoError(t, err)

	t.Run("matches the contract argument list", func(t *testing.T) {
		variants := allOff()
		variants["shared"] = true
		variants["proj"] = true
		variants["parallel-netcdf4"] = true

		r := domain.NewResolution("2.0.2", variants, map[string]string{"mpi": "/opt/mpi"})

		args, err := desc.BuildArguments(r)
		require.NoError(t, err)
		assert.Equal(t, domain.ArgumentList{
			{Flag: "CMAKE_C_COMPILER", Value: "/opt/mpi/bin/mpicc"},
			{Flag: "CMAKE_CXX_COMPILER", Value: "/opt/mpi/bin/mpicxx"},
			{Flag: "Pism_BUILD_EXTRA_EXECS", Value: "NO"},
			{Flag: "BUILD_SHARED_LIBS", Value: "YES"},
			{Flag: "Pism_BUILD_PYTHON_BINDINGS", Value: "NO"},
			{Flag: "Pism_BUILD_ICEBIN", Value: "NO"},
			{Flag: "Pism_USE_PROJ", Value: "YES"},
			{Flag: "Pism_USE_PARALLEL_NETCDF4", Value: "YES"},
			{Flag: "Pism_USE_PNETCDF", Value: "NO"},
			{Flag: "Pism_USE_PARALLEL_HDF5", Value: "NO"},
			{Flag: "Pism_BUILD_PDFS", Value: "NO"},
			{Flag: "Pism_INSTALL_EXAMPLES", Value: "NO"},
			{Flag: "Pism_USE_EVERYTRACE", Value: "NO"},
		}, args)
	})

	t.Run("all variants off yields compiler flags then eleven NOs", func(t *testing.T) {
		r := domain.NewResolution("2.0.2", allOff(), map[string]string{"mpi": "/opt/mpi"})

		args, err := desc.BuildArguments(r)
		require.NoError(t, err)
		require.Len(t, args, 13)
		assert.Equal(t, "CMAKE_C_COMPILER", args[0].Flag)
		assert.Equal(t, "CMAKE_CXX_COMPILER", args[1].Flag)
		for _, arg := range args[2:] {
			assert.Equal(t, "NO", arg.Value, "flag %s", arg.Flag)
		}
	})

	t.Run("toggling one variant changes exactly one entry", func(t *testing.T) {
		locations := map[string]string{"mpi": "/opt/mpi"}
		base, err := desc.BuildArguments(domain.NewResolution("2.0.2", allOff(), locations))
		require.NoError(t, err)

		for i, name := range variantNames {
			variants := allOff()
			variants[name] = true

			toggled, err := desc.BuildArguments(domain.NewResolution("2.0.2", variants, locations))
			require.NoError(t, err)
			require.Len(t, toggled, len(base))

			for j := range base {
				if j == 2+i {
					assert.Equal(t, "YES", toggled[j].Value, "variant %s", name)
					continue
				}
				assert.Equal(t, base[j], toggled[j], "variant %s position %d", name, j)
			}
		}
	})

	t.Run("fails without a resolved mpi", func(t *testing.T) {
		_, err := desc.BuildArguments(domain.NewResolution("2.0.2", allOff(), nil))
		require.ErrorContains(t, err, domain.ErrMissingDependency.Error())
	})
}

func TestPism_ConditionalDependencies(t *testing.T) {
	desc, err := pism.New()
	require.NoError(t, err)

	everytrace := domain.NewInternedString("everytrace")
	python := domain.NewInternedString("python")

	t.Run("everytrace tracks its variant", func(t *testing.T) {
		for _, enabled := range []bool{false, true} {
			variants := allOff()
			variants["everytrace"] = enabled
			r := domain.NewResolution("2.0.2", variants, nil)
			assert.Equal(t, enabled, desc.IsDependencyRequired(everytrace, r))
		}
	})

	t.Run("unconditional dependencies are always required", func(t *testing.T) {
		r := domain.NewResolution("2.0.2", allOff(), nil)
		for _, name := range []string{"fftw", "gsl", "mpi", "netcdf-c", "petsc", "udunits", "proj", "cmake"} {
			assert.True(t, desc.IsDependencyRequired(domain.NewInternedString(name), r), name)
		}
	})

	t.Run("python bracket follows the selected version", func(t *testing.T) {
		withPython := allOff()
		withPython["python"] = true

		modern := domain.NewResolution("2.0.2", withPython, nil)
		require.True(t, desc.IsDependencyRequired(python, modern))
		deps, err := desc.RequiredDependencies(modern)
		require.NoError(t, err)
		assert.Equal(t, "2.7:", constraintFor(t, deps, "python"))

		legacy := domain.NewResolution("0.7.x", withPython, nil)
		require.True(t, desc.IsDependencyRequired(python, legacy))
		deps, err = desc.RequiredDependencies(legacy)
		require.NoError(t, err)
		assert.Equal(t, "2.7:2.8", constraintFor(t, deps, "python"))

		off := domain.NewResolution("2.0.2", allOff(), nil)
		assert.False(t, desc.IsDependencyRequired(python, off))
	})
}

func constraintFor(t *testing.T, deps []domain.Dependency, pkg string) string {
	t.Helper()
	for _, dep := range deps {
		if dep.Package.String() == pkg {
			return dep.Constraint.String()
		}
	}
	t.Fatalf("dependency %s not active", pkg)
	return ""
}

func TestPism_RuntimeEnvironment(t *testing.T) {
	desc, err := pism.New()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"PISM_PREFIX": "/opt/pism",
		"PISM_BIN":    "/opt/pism/bin",
	}, desc.RuntimeEnvironment("/opt/pism"))

	assert.Equal(t, map[string]string{
		"I_MPI_FABRICS": "shm:tmi",
	}, desc.BuildEnvironment())
}
