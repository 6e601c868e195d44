// Package app implements the application layer for mason.
package app

import (
	"context"

	"go.trai.ch/mason/internal/adapters/config" //nolint:depguard // Variant spec parsing is wired in the app layer
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	registry     ports.RecipeRegistry
	recipeSource ports.RecipeSource
	configLoader ports.ConfigLoader
	invoker      ports.BuildInvoker
	verifier     ports.IntegrityVerifier
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	registry ports.RecipeRegistry,
	recipeSource ports.RecipeSource,
	configLoader ports.ConfigLoader,
	invoker ports.BuildInvoker,
	verifier ports.IntegrityVerifier,
	logger ports.Logger,
) *App {
	return &App{
		registry:     registry,
		recipeSource: recipeSource,
		configLoader: configLoader,
		invoker:      invoker,
		verifier:     verifier,
		logger:       logger,
	}
}

// ConfigureOptions control the configure operation.
type ConfigureOptions struct {
	// ConfigPath is the path to the mason.yaml build configuration.
	ConfigPath string

	// RecipePath optionally names a recipe file to use instead of the
	// registry entry for the configured package.
	RecipePath string

	// VariantSpec holds CLI variant overrides, e.g. "+shared ~doc".
	// They apply on top of the configuration file's overrides.
	VariantSpec string

	// DryRun renders the argument list without invoking the build tool.
	DryRun bool
}

// ConfigureResult reports what a configure run produced.
type ConfigureResult struct {
	Package     string
	Version     string
	Fingerprint string

	// Args is the ordered argument list handed to the build tool.
	Args domain.ArgumentList

	// Argv is the build tool's command-line rendering of Args.
	Argv []string

	// Invoked says whether the build tool was actually run.
	Invoked bool
}

// Configure loads the build configuration, resolves the package's variants
// and dependencies, and hands the resulting argument list to the build
// tool. With DryRun set, the arguments are computed but nothing runs.
func (a *App) Configure(ctx context.Context, opts ConfigureOptions) (*ConfigureResult, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	desc, err := a.lookupDescriptor(cfg.Package, opts.RecipePath)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]bool, len(cfg.Variants))
	for name, value := range cfg.Variants {
		overrides[name] = value
	}
	if opts.VariantSpec != "" {
		cliOverrides, err := config.ParseVariantSpec(opts.VariantSpec)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse variant overrides")
		}
		for name, value := range cliOverrides {
			overrides[name] = value
		}
	}

	resolution, err := desc.Resolve(cfg.Version, overrides, cfg.Dependencies)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve configuration")
	}

	args, err := desc.BuildArguments(resolution)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compute build arguments")
	}

	result := &ConfigureResult{
		Package:     desc.Name(),
		Version:     cfg.Version,
		Fingerprint: resolution.Fingerprint(),
		Args:        args,
		Argv:        a.invoker.Render(args),
	}

	if opts.DryRun {
		return result, nil
	}

	if err := a.invoker.Configure(ctx, cfg.SourceDir, cfg.BuildDir, args, desc.BuildEnvironment()); err != nil {
		return nil, err
	}
	result.Invoked = true
	a.logger.Info("configured " + desc.Name() + "@" + cfg.Version + " (" + result.Fingerprint + ")")
	return result, nil
}

// EnvOptions control the env operation.
type EnvOptions struct {
	// ConfigPath is consulted for the install prefix when Prefix is empty.
	ConfigPath string

	// Package is the package whose runtime environment is produced.
	Package string

	// Prefix is the install prefix. When empty, the configuration file's
	// installPrefix is used.
	Prefix string
}

// Env returns the environment variables downstream consumers of the
// package need, derived from its install prefix.
func (a *App) Env(opts EnvOptions) (map[string]string, error) {
	desc, err := a.lookupDescriptor(opts.Package, "")
	if err != nil {
		return nil, err
	}

	prefix := opts.Prefix
	if prefix == "" {
		cfg, err := a.configLoader.Load(opts.ConfigPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		prefix = cfg.InstallPrefix
	}
	if prefix == "" {
		return nil, zerr.New("no install prefix given and none configured")
	}

	return desc.RuntimeEnvironment(prefix), nil
}

// Info returns the descriptor for the named package, or for the recipe
// file when recipePath is set.
func (a *App) Info(pkg, recipePath string) (*domain.Descriptor, error) {
	return a.lookupDescriptor(pkg, recipePath)
}

// List returns all registered descriptors.
func (a *App) List() []*domain.Descriptor {
	return a.registry.List()
}

// Verify checks local source archives against the digests the package
// declares. files maps version identifiers to archive paths; archives are
// checked concurrently.
func (a *App) Verify(ctx context.Context, pkg string, files map[string]string) error {
	desc, err := a.lookupDescriptor(pkg, "")
	if err != nil {
		return err
	}

	byPath := make(map[string]string, len(files))
	for versionID, path := range files {
		version, ok := desc.FindVersion(versionID)
		if !ok {
			err := zerr.With(domain.ErrVersionNotFound, "package", pkg)
			return zerr.With(err, "version", versionID)
		}
		if version.SHA256 == "" {
			err := zerr.With(domain.ErrNoChecksum, "package", pkg)
			return zerr.With(err, "version", versionID)
		}
		byPath[path] = version.SHA256
	}

	if err := a.verifier.VerifyAll(ctx, byPath); err != nil {
		return err
	}
	a.logger.Info("verified " + pkg + " archives")
	return nil
}

func (a *App) lookupDescriptor(pkg, recipePath string) (*domain.Descriptor, error) {
	if recipePath != "" {
		desc, err := a.recipeSource.Load(recipePath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load recipe")
		}
		if pkg != "" && desc.Name() != pkg {
			err := zerr.With(zerr.New("recipe file names a different package"), "package", pkg)
			return nil, zerr.With(err, "recipe_package", desc.Name())
		}
		return desc, nil
	}
	return a.registry.Get(pkg)
}
