// Package domain contains the core domain model: package descriptors,
// build variants, conditional dependencies and per-build resolutions.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Toolchain names the dependency that provides the compiler wrappers and
// the wrapper locations below that dependency's install prefix.
type Toolchain struct {
	// Dependency is the package whose prefix holds the wrappers, e.g. "mpi".
	Dependency InternedString

	// CC is the C compiler wrapper subpath, e.g. "bin/mpicc".
	CC string

	// CXX is the C++ compiler wrapper subpath, e.g. "bin/mpicxx".
	CXX string
}

// DescriptorConfig carries the static metadata used to construct a Descriptor.
type DescriptorConfig struct {
	Name        string
	Homepage    string
	URL         string
	Git         string
	Maintainers []string

	Versions     []Version
	Variants     []Variant
	Dependencies []Dependency
	Toolchain    Toolchain

	// RuntimePrefixVar and RuntimeBinVar name the environment variables
	// exported for consumers after installation, e.g. PISM_PREFIX/PISM_BIN.
	RuntimePrefixVar string
	RuntimeBinVar    string

	// BuildEnv is injected into the environment of the build tool.
	BuildEnv map[string]string
}

// Descriptor is the static, read-only metadata object for one package. It
// is constructed once and translates per-build Resolutions into build-tool
// arguments and environment variables. All operations are pure.
type Descriptor struct {
	name        InternedString
	homepage    string
	url         string
	git         string
	maintainers []string

	versions     []Version
	variants     []Variant
	variantIndex map[InternedString]int
	dependencies []Dependency
	toolchain    Toolchain

	runtimePrefixVar string
	runtimeBinVar    string
	buildEnv         map[string]string
}

// NewDescriptor validates the given metadata and constructs a Descriptor.
func NewDescriptor(cfg DescriptorConfig) (*Descriptor, error) {
	if cfg.Name == "" {
		return nil, zerr.Wrap(ErrInvalidDescriptor, "package name is empty")
	}

	seenVersions := make(map[string]bool, len(cfg.Versions))
	for _, v := range cfg.Versions {
		if v.ID == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalidDescriptor, "version has empty identifier"), "package", cfg.Name)
		}
		if seenVersions[v.ID] {
			return nil, zerr.With(zerr.With(ErrDuplicateVersion, "package", cfg.Name), "version", v.ID)
		}
		seenVersions[v.ID] = true
	}

	variantIndex := make(map[InternedString]int, len(cfg.Variants))
	for i, v := range cfg.Variants {
		if v.Name.IsZero() {
			return nil, zerr.With(zerr.Wrap(ErrInvalidDescriptor, "variant has empty name"), "package", cfg.Name)
		}
		if v.Flag == "" {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrInvalidDescriptor, "variant has no build flag"), "package", cfg.Name), "variant", v.Name.String())
		}
		if _, exists := variantIndex[v.Name]; exists {
			return nil, zerr.With(zerr.With(ErrDuplicateVariant, "package", cfg.Name), "variant", v.Name.String())
		}
		variantIndex[v.Name] = i
	}

	if !cfg.Toolchain.Dependency.IsZero() {
		declared := false
		for _, dep := range cfg.Dependencies {
			if dep.Package == cfg.Toolchain.Dependency {
				declared = true
				break
			}
		}
		if !declared {
			return nil, zerr.With(zerr.Wrap(ErrInvalidDescriptor, "toolchain dependency is not declared"), "dependency", cfg.Toolchain.Dependency.String())
		}
	}

	d := &Descriptor{
		name:             NewInternedString(cfg.Name),
		homepage:         cfg.Homepage,
		url:              cfg.URL,
		git:              cfg.Git,
		maintainers:      append([]string(nil), cfg.Maintainers...),
		versions:         append([]Version(nil), cfg.Versions...),
		variants:         append([]Variant(nil), cfg.Variants...),
		variantIndex:     variantIndex,
		dependencies:     append([]Dependency(nil), cfg.Dependencies...),
		toolchain:        cfg.Toolchain,
		runtimePrefixVar: cfg.RuntimePrefixVar,
		runtimeBinVar:    cfg.RuntimeBinVar,
		buildEnv:         make(map[string]string, len(cfg.BuildEnv)),
	}
	for k, v := range cfg.BuildEnv {
		d.buildEnv[k] = v
	}
	return d, nil
}

// Name returns the package identifier.
func (d *Descriptor) Name() string { return d.name.String() }

// Homepage returns the project homepage URL.
func (d *Descriptor) Homepage() string { return d.homepage }

// URL returns the source archive URL template.
func (d *Descriptor) URL() string { return d.url }

// Git returns the source repository URL.
func (d *Descriptor) Git() string { return d.git }

// Maintainers returns the recipe maintainer handles.
func (d *Descriptor) Maintainers() []string {
	return append([]string(nil), d.maintainers...)
}

// Versions returns the declared versions in declaration order.
func (d *Descriptor) Versions() []Version {
	return append([]Version(nil), d.versions...)
}

// Variants returns the declared variants in declaration order.
func (d *Descriptor) Variants() []Variant {
	return append([]Variant(nil), d.variants...)
}

// Dependencies returns the declared dependencies in declaration order.
func (d *Descriptor) Dependencies() []Dependency {
	return append([]Dependency(nil), d.dependencies...)
}

// FindVersion looks up a declared version by identifier.
func (d *Descriptor) FindVersion(id string) (Version, bool) {
	for _, v := range d.versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

// Variant looks up a declared variant by name.
func (d *Descriptor) Variant(name InternedString) (Variant, bool) {
	i, ok := d.variantIndex[name]
	if !ok {
		return Variant{}, false
	}
	return d.variants[i], true
}

// CompilerPaths derives the compiler selection arguments from the toolchain
// dependency's resolved prefix. The toolchain dependency is unconditional,
// so its absence from the resolution is a caller contract violation and
// yields ErrMissingDependency.
func (d *Descriptor) CompilerPaths(r *Resolution) (ArgumentList, error) {
	prefix, ok := r.Location(d.toolchain.Dependency)
	if !ok {
		err := zerr.With(ErrMissingDependency, "package", d.name.String())
		return nil, zerr.With(err, "dependency", d.toolchain.Dependency.String())
	}
	return ArgumentList{
		{Flag: CCompilerFlag, Value: filepath.Join(prefix, d.toolchain.CC)},
		{Flag: CXXCompilerFlag, Value: filepath.Join(prefix, d.toolchain.CXX)},
	}, nil
}

// BuildArguments translates a resolution into the ordered flag list for the
// build tool: the two compiler flags, then one YES/NO flag per variant in
// declaration order. The resolution must assign every declared variant;
// otherwise ErrIncompleteResolution is returned and no partial list is
// produced.
func (d *Descriptor) BuildArguments(r *Resolution) (ArgumentList, error) {
	var missing []string
	for _, v := range d.variants {
		if _, ok := r.Variant(v.Name); !ok {
			missing = append(missing, v.Name.String())
		}
	}
	if len(missing) > 0 {
		err := zerr.With(ErrIncompleteResolution, "package", d.name.String())
		return nil, zerr.With(err, "missing_variants", strings.Join(missing, ","))
	}

	args, err := d.CompilerPaths(r)
	if err != nil {
		return nil, err
	}

	for _, v := range d.variants {
		value := "NO"
		if r.VariantEnabled(v.Name) {
			value = "YES"
		}
		args = append(args, Argument{Flag: v.Flag, Value: value})
	}
	return args, nil
}

// RuntimeEnvironment returns the environment variables exported to
// processes that consume the package after installation: the install
// prefix and its bin subdirectory. Total function, no failure modes.
func (d *Descriptor) RuntimeEnvironment(installPrefix string) map[string]string {
	return map[string]string{
		d.runtimePrefixVar: installPrefix,
		d.runtimeBinVar:    filepath.Join(installPrefix, "bin"),
	}
}

// BuildEnvironment returns the environment variables injected into the
// build tool's process.
func (d *Descriptor) BuildEnvironment() map[string]string {
	out := make(map[string]string, len(d.buildEnv))
	for k, v := range d.buildEnv {
		out[k] = v
	}
	return out
}

// IsDependencyRequired reports whether any declaration for the given
// package is active under the resolution. The external resolver uses this
// to decide whether a conditional dependency needs to be fetched at all.
func (d *Descriptor) IsDependencyRequired(pkg InternedString, r *Resolution) bool {
	for _, dep := range d.dependencies {
		if dep.Package == pkg && dep.Applies(r) {
			return true
		}
	}
	return false
}

// RequiredDependencies returns the declarations active under the
// resolution, in declaration order. Two active declarations for the same
// package with different version constraints violate the descriptor
// invariant and yield ErrConflictingDependency.
func (d *Descriptor) RequiredDependencies(r *Resolution) ([]Dependency, error) {
	constraints := make(map[InternedString]VersionRange)
	var active []Dependency
	for _, dep := range d.dependencies {
		if !dep.Applies(r) {
			continue
		}
		if prev, seen := constraints[dep.Package]; seen {
			if !prev.IsZero() && !dep.Constraint.IsZero() && prev != dep.Constraint {
				err := zerr.With(ErrConflictingDependency, "package", d.name.String())
				err = zerr.With(err, "dependency", dep.Package.String())
				err = zerr.With(err, "constraints", prev.String()+" vs "+dep.Constraint.String())
				return nil, err
			}
		}
		// Never let an unconstrained duplicate shadow an earlier constraint.
		if !dep.Constraint.IsZero() {
			constraints[dep.Package] = dep.Constraint
		}
		active = append(active, dep)
	}
	return active, nil
}

// Resolve builds a Resolution for the given version from the variant
// defaults, the given overrides and the resolved dependency locations. It
// fails if the version is undeclared, an override names an unknown variant,
// or a required dependency has no location.
func (d *Descriptor) Resolve(versionID string, overrides map[string]bool, locations map[string]string) (*Resolution, error) {
	if _, ok := d.FindVersion(versionID); !ok {
		err := zerr.With(ErrVersionNotFound, "package", d.name.String())
		return nil, zerr.With(err, "version", versionID)
	}

	variants := make(map[string]bool, len(d.variants))
	for _, v := range d.variants {
		variants[v.Name.String()] = v.Default
	}
	for name, value := range overrides {
		if _, ok := d.variantIndex[NewInternedString(name)]; !ok {
			err := zerr.With(ErrUnknownVariant, "package", d.name.String())
			return nil, zerr.With(err, "variant", name)
		}
		variants[name] = value
	}

	r := NewResolution(versionID, variants, locations)

	required, err := d.RequiredDependencies(r)
	if err != nil {
		return nil, err
	}
	for _, dep := range required {
		if _, ok := r.Location(dep.Package); !ok {
			err := zerr.With(ErrMissingDependency, "package", d.name.String())
			return nil, zerr.With(err, "dependency", dep.Package.String())
		}
	}
	return r, nil
}
