// Package config provides the build configuration loader for mason.
package config

import (
	"os"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a build configuration from the given path.
func (l *Loader) Load(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Masonfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Package == "" {
		return nil, zerr.With(zerr.New("config names no package"), "path", path)
	}
	if file.PackageVer == "" {
		return nil, zerr.With(zerr.New("config names no package version"), "path", path)
	}

	cfg := &domain.BuildConfig{
		Package:       file.Package,
		Version:       file.PackageVer,
		Variants:      file.Variants,
		Dependencies:  file.Dependencies,
		InstallPrefix: file.InstallPrefix,
		SourceDir:     file.SourceDir,
		BuildDir:      file.BuildDir,
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = "."
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = domain.DefaultBuildDirName
	}
	return cfg, nil
}

// ParseVariantSpec parses a whitespace-separated variant override string of
// the form "+shared ~doc". A leading '+' enables the variant; '~' or '-'
// disables it. Returns the overrides keyed by variant name.
func ParseVariantSpec(spec string) (map[string]bool, error) {
	overrides := make(map[string]bool)
	for _, token := range strings.Fields(spec) {
		if len(token) < 2 {
			return nil, zerr.With(zerr.New("invalid variant token"), "token", token)
		}
		name := token[1:]
		switch token[0] {
		case '+':
			overrides[name] = true
		case '~', '-':
			overrides[name] = false
		default:
			return nil, zerr.With(zerr.New("variant token must start with '+', '~' or '-'"), "token", token)
		}
	}
	return overrides, nil
}
