package domain

// Variant is a named boolean build option. The order in which variants are
// declared on a descriptor fixes the order of the emitted build arguments.
type Variant struct {
	// Name identifies the variant, e.g. "shared".
	Name InternedString

	// Default is the value the variant takes when a resolution does not
	// override it.
	Default bool

	// Description is a human-readable summary of what the variant enables.
	Description string

	// Flag is the build-tool option toggled by this variant,
	// e.g. "BUILD_SHARED_LIBS".
	Flag string
}
