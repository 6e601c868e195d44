package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/config"
	"go.trai.ch/mason/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := config.NewLoader()

	t.Run("reads a full configuration", func(t *testing.T) {
		path := writeConfig(t, `
version: "1"
package: pism
packageVersion: 2.0.2
variants:
  proj: true
  doc: false
dependencies:
  mpi: /opt/mpi
installPrefix: /opt/pism
sourceDir: src
buildDir: out
`)

		cfg, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "pism", cfg.Package)
		assert.Equal(t, "2.0.2", cfg.Version)
		assert.Equal(t, map[string]bool{"proj": true, "doc": false}, cfg.Variants)
		assert.Equal(t, map[string]string{"mpi": "/opt/mpi"}, cfg.Dependencies)
		assert.Equal(t, "/opt/pism", cfg.InstallPrefix)
		assert.Equal(t, "src", cfg.SourceDir)
		assert.Equal(t, "out", cfg.BuildDir)
	})

	t.Run("defaults source and build directories", func(t *testing.T) {
		path := writeConfig(t, "package: pism\npackageVersion: 2.0.2\n")

		cfg, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.SourceDir)
		assert.Equal(t, domain.DefaultBuildDirName, cfg.BuildDir)
	})

	t.Run("fails when the file is missing", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "package: [broken\n")

		_, err := loader.Load(path)
		require.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("fails without a package name", func(t *testing.T) {
		path := writeConfig(t, "packageVersion: 2.0.2\n")

		_, err := loader.Load(path)
		require.ErrorContains(t, err, "config names no package")
	})

	t.Run("fails without a package version", func(t *testing.T) {
		path := writeConfig(t, "package: pism\n")

		_, err := loader.Load(path)
		require.ErrorContains(t, err, "config names no package version")
	})
}

func TestParseVariantSpec(t *testing.T) {
	t.Run("parses enable and disable tokens", func(t *testing.T) {
		overrides, err := config.ParseVariantSpec("+proj ~doc -examples")
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"proj":     true,
			"doc":      false,
			"examples": false,
		}, overrides)
	})

	t.Run("empty spec yields no overrides", func(t *testing.T) {
		overrides, err := config.ParseVariantSpec("  ")
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("rejects a bare sigil", func(t *testing.T) {
		_, err := config.ParseVariantSpec("+")
		require.ErrorContains(t, err, "invalid variant token")
	})

	t.Run("rejects an unmarked name", func(t *testing.T) {
		_, err := config.ParseVariantSpec("proj")
		require.ErrorContains(t, err, "variant token must start with")
	})
}
