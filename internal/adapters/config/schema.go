package config

// Masonfile represents the structure of the mason.yaml configuration file.
type Masonfile struct {
	Version       string            `yaml:"version"`
	Package       string            `yaml:"package"`
	PackageVer    string            `yaml:"packageVersion"`
	Variants      map[string]bool   `yaml:"variants"`
	Dependencies  map[string]string `yaml:"dependencies"`
	InstallPrefix string            `yaml:"installPrefix"`
	SourceDir     string            `yaml:"sourceDir"`
	BuildDir      string            `yaml:"buildDir"`
}
