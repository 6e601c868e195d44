package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDescriptor is returned when descriptor metadata is structurally invalid.
	ErrInvalidDescriptor = zerr.New("invalid descriptor")

	// ErrDuplicateVersion is returned when a descriptor declares the same version twice.
	ErrDuplicateVersion = zerr.New("duplicate version")

	// ErrDuplicateVariant is returned when a descriptor declares the same variant twice.
	ErrDuplicateVariant = zerr.New("duplicate variant")

	// ErrVersionNotFound is returned when a requested version is not declared by the descriptor.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrUnknownVariant is returned when a variant override names a variant the descriptor does not declare.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrMissingDependency is returned when a required dependency has no resolved location.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrIncompleteResolution is returned when a resolution does not cover every declared variant.
	ErrIncompleteResolution = zerr.New("incomplete resolution")

	// ErrConflictingDependency is returned when two active declarations for the
	// same package carry different version constraints.
	ErrConflictingDependency = zerr.New("conflicting dependency declarations")

	// ErrUnknownPackage is returned when a requested package is not in the registry.
	ErrUnknownPackage = zerr.New("unknown package")

	// ErrDuplicatePackage is returned when a package is registered twice.
	ErrDuplicatePackage = zerr.New("duplicate package")

	// ErrChecksumMismatch is returned when a source archive does not match its declared digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrNoChecksum is returned when verification is requested for a version
	// that carries no digest (branch-tracking versions).
	ErrNoChecksum = zerr.New("version has no checksum")

	// ErrConfigureFailed is returned when the wrapped build tool's configure step fails.
	ErrConfigureFailed = zerr.New("configure failed")
)
