package domain

const (
	// ConfigFileName is the default name of the build configuration file.
	ConfigFileName = "mason.yaml"

	// DefaultBuildDirName is the build directory used when the
	// configuration does not name one.
	DefaultBuildDirName = "build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
