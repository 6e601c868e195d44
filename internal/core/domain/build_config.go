package domain

// BuildConfig is one build invocation as described by the user's mason.yaml:
// which package at which version, the variant overrides, and where the
// resolved dependencies are installed.
type BuildConfig struct {
	// Package is the package to configure.
	Package string

	// Version is the selected version identifier.
	Version string

	// Variants overrides variant defaults declared by the descriptor.
	Variants map[string]bool

	// Dependencies maps dependency package names to install prefixes.
	Dependencies map[string]string

	// InstallPrefix is where the package will be installed.
	InstallPrefix string

	// SourceDir is the package source checkout handed to the build tool.
	SourceDir string

	// BuildDir is the out-of-tree build directory.
	BuildDir string
}
