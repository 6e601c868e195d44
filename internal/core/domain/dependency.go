package domain

// DependencyKind distinguishes link/run-time dependencies from tools that
// are only needed while building.
type DependencyKind int

const (
	// KindLink marks a dependency that is linked against or needed at run time.
	KindLink DependencyKind = iota

	// KindBuild marks a dependency that is only needed during the build.
	KindBuild
)

// String returns the kind's configuration-file spelling.
func (k DependencyKind) String() string {
	if k == KindBuild {
		return "build"
	}
	return "link"
}

// Dependency declares that a package requires another package, optionally
// constrained to a version range and gated on a condition.
type Dependency struct {
	// Package is the target package identifier, e.g. "mpi".
	Package InternedString

	// Constraint restricts acceptable versions of the target package.
	// The zero range accepts any version.
	Constraint VersionRange

	// Condition gates the declaration. A nil condition means Always.
	Condition Condition

	// Kind says whether the dependency is needed at build time only.
	Kind DependencyKind
}

// Applies reports whether the declaration is active for the given resolution.
func (d Dependency) Applies(r *Resolution) bool {
	if d.Condition == nil {
		return true
	}
	return d.Condition.Eval(r)
}
