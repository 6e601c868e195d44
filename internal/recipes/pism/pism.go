// Package pism defines the build recipe for PISM, the Parallel Ice Sheet
// Model. PISM builds with CMake against an MPI toolchain; every boolean
// build option is exposed as a variant.
package pism

import (
	"go.trai.ch/mason/internal/core/domain"
)

// New constructs the PISM descriptor.
func New() (*domain.Descriptor, error) {
	return domain.NewDescriptor(domain.DescriptorConfig{
		Name:        "pism",
		Homepage:    "https://pism-docs.org",
		URL:         "https://github.com/pism/pism/archive/v1.1.4.tar.gz",
		Git:         "https://github.com/pism/pism.git",
		Maintainers: []string{"citibeth"},

		Versions: []domain.Version{
			{ID: "develop", Branch: "dev"},
			{ID: "2.0.2", SHA256: "f316cc50d6a7cd77df9fc416c90d7c16debdc8ea050ef57deb621e1d72440403"},
			{ID: "1.2.2", SHA256: "ecb880af26643e80b890f74efcf0e4d7e5d60adbc921ef281d3f00904020c624"},
			{ID: "1.1.4", SHA256: "8ccb867af3b37e8d103351dadc1d7e77512e64379519fe8a2592668deb27bc44"},
			{ID: "0.7.x", Branch: "stable0.7"},
			{ID: "icebin", Branch: "efischer/dev"},
		},

		// The order of this slice fixes the order of the emitted build
		// flags; tools assert on argument position.
		Variants: []domain.Variant{
			{
				Name:        domain.NewInternedString("extra"),
				Default:     false,
				Description: "Build extra executables (testing/verification)",
				Flag:        "Pism_BUILD_EXTRA_EXECS",
			},
			{
				Name:        domain.NewInternedString("shared"),
				Default:     true,
				Description: "Build shared Pism libraries",
				Flag:        "BUILD_SHARED_LIBS",
			},
			{
				Name:        domain.NewInternedString("python"),
				Default:     false,
				Description: "Build python bindings",
				Flag:        "Pism_BUILD_PYTHON_BINDINGS",
			},
			{
				Name:        domain.NewInternedString("icebin"),
				Default:     false,
				Description: "Build classes needed by IceBin",
				Flag:        "Pism_BUILD_ICEBIN",
			},
			{
				Name:        domain.NewInternedString("proj"),
				Default:     true,
				Description: "Use Proj to compute cell areas, longitudes, and latitudes",
				Flag:        "Pism_USE_PROJ",
			},
			{
				Name:        domain.NewInternedString("parallel-netcdf4"),
				Default:     true,
				Description: "Enables parallel NetCDF-4 I/O",
				Flag:        "Pism_USE_PARALLEL_NETCDF4",
			},
			{
				Name:        domain.NewInternedString("parallel-netcdf3"),
				Default:     false,
				Description: "Enables parallel NetCDF-3 I/O using PnetCDF",
				Flag:        "Pism_USE_PNETCDF",
			},
			{
				Name:        domain.NewInternedString("parallel-hdf5"),
				Default:     false,
				Description: "Enables parallel HDF5 I/O",
				Flag:        "Pism_USE_PARALLEL_HDF5",
			},
			{
				Name:        domain.NewInternedString("doc"),
				Default:     false,
				Description: "Build PISM documentation (requires LaTeX and Doxygen)",
				Flag:        "Pism_BUILD_PDFS",
			},
			{
				Name:        domain.NewInternedString("examples"),
				Default:     false,
				Description: "Install examples directory",
				Flag:        "Pism_INSTALL_EXAMPLES",
			},
			{
				Name:        domain.NewInternedString("everytrace"),
				Default:     false,
				Description: "Report errors through Everytrace",
				Flag:        "Pism_USE_EVERYTRACE",
			},
		},

		Dependencies: []domain.Dependency{
			{Package: domain.NewInternedString("fftw")},
			{Package: domain.NewInternedString("gsl")},
			{Package: domain.NewInternedString("mpi")},
			// Only the C interface is used, no netcdf-cxx4.
			{Package: domain.NewInternedString("netcdf-c")},
			{Package: domain.NewInternedString("petsc")},
			{Package: domain.NewInternedString("udunits")},
			{
				Package:    domain.NewInternedString("proj"),
				Constraint: domain.VersionRange{Lo: "6"},
			},
			{
				Package:   domain.NewInternedString("everytrace"),
				Condition: domain.IfVariant("everytrace", true),
			},
			{
				Package:    domain.NewInternedString("cmake"),
				Constraint: domain.VersionRange{Lo: "3.1"},
				Kind:       domain.KindBuild,
			},
			{
				Package:    domain.NewInternedString("python"),
				Constraint: domain.VersionRange{Lo: "2.7"},
				Condition: domain.And(
					domain.IfVariant("python", true),
					domain.IfVersionInRange("1.1", ""),
				),
			},
			{
				Package:    domain.NewInternedString("python"),
				Constraint: domain.VersionRange{Lo: "2.7", Hi: "2.8"},
				Condition: domain.And(
					domain.IfVariant("python", true),
					domain.IfVersionInRange("", "1.0"),
				),
			},
			{
				Package:   domain.NewInternedString("py-matplotlib"),
				Condition: domain.IfVariant("python", true),
			},
			{
				Package:   domain.NewInternedString("py-numpy"),
				Condition: domain.IfVariant("python", true),
			},
		},

		Toolchain: domain.Toolchain{
			Dependency: domain.NewInternedString("mpi"),
			CC:         "bin/mpicc",
			CXX:        "bin/mpicxx",
		},

		RuntimePrefixVar: "PISM_PREFIX",
		RuntimeBinVar:    "PISM_BIN",

		BuildEnv: map[string]string{
			"I_MPI_FABRICS": "shm:tmi",
		},
	})
}
