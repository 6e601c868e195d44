// Package recipefile loads package descriptors from YAML recipe files.
package recipefile

import (
	"os"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.RecipeSource using YAML files.
type Loader struct{}

// NewLoader creates a new recipe Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a recipe file from the given path and returns the descriptor.
func (l *Loader) Load(path string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read recipe file")
	}

	var dto recipeDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse recipe file")
	}

	desc, err := toDescriptor(dto)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return desc, nil
}

func toDescriptor(dto recipeDTO) (*domain.Descriptor, error) {
	versions := make([]domain.Version, len(dto.Versions))
	for i, v := range dto.Versions {
		versions[i] = domain.Version{ID: v.ID, SHA256: v.SHA256, Branch: v.Branch}
	}

	variants := make([]domain.Variant, len(dto.Variants))
	for i, v := range dto.Variants {
		variants[i] = domain.Variant{
			Name:        domain.NewInternedString(v.Name),
			Default:     v.Default,
			Description: v.Description,
			Flag:        v.Flag,
		}
	}

	dependencies := make([]domain.Dependency, len(dto.Dependencies))
	for i, d := range dto.Dependencies {
		dep, err := toDependency(d)
		if err != nil {
			return nil, err
		}
		dependencies[i] = dep
	}

	return domain.NewDescriptor(domain.DescriptorConfig{
		Name:        dto.Package,
		Homepage:    dto.Homepage,
		URL:         dto.URL,
		Git:         dto.Git,
		Maintainers: dto.Maintainers,

		Versions:     versions,
		Variants:     variants,
		Dependencies: dependencies,

		Toolchain: domain.Toolchain{
			Dependency: domain.NewInternedString(dto.Toolchain.Dependency),
			CC:         dto.Toolchain.CC,
			CXX:        dto.Toolchain.CXX,
		},

		RuntimePrefixVar: dto.Environment.PrefixVar,
		RuntimeBinVar:    dto.Environment.BinVar,
		BuildEnv:         dto.Environment.Build,
	})
}

func toDependency(dto dependencyDTO) (domain.Dependency, error) {
	dep := domain.Dependency{
		Package: domain.NewInternedString(dto.Package),
	}

	switch dto.Kind {
	case "", "link":
		dep.Kind = domain.KindLink
	case "build":
		dep.Kind = domain.KindBuild
	default:
		return domain.Dependency{}, zerr.With(zerr.New("unknown dependency kind"), "kind", dto.Kind)
	}

	if dto.Constraint != "" {
		constraint, err := parseRange(dto.Constraint)
		if err != nil {
			return domain.Dependency{}, err
		}
		dep.Constraint = constraint
	}

	if dto.When != nil {
		cond, err := toCondition(*dto.When)
		if err != nil {
			return domain.Dependency{}, err
		}
		dep.Condition = cond
	}

	return dep, nil
}

func toCondition(dto whenDTO) (domain.Condition, error) {
	var clauses []domain.Condition
	if dto.Variant != "" {
		clauses = append(clauses, domain.IfVariant(dto.Variant, !dto.Disabled))
	}
	if dto.Versions != "" {
		versions, err := parseRange(dto.Versions)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, domain.IfVersionInRange(versions.Lo, versions.Hi))
	}

	switch len(clauses) {
	case 0:
		return nil, zerr.New("empty when clause")
	case 1:
		return clauses[0], nil
	default:
		return domain.And(clauses...), nil
	}
}

// parseRange parses a "lo:hi" constraint string. A missing side is open;
// a bare version with no colon constrains to exactly that version.
func parseRange(s string) (domain.VersionRange, error) {
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		return domain.VersionRange{Lo: s, Hi: s}, nil
	}
	if lo == "" && hi == "" {
		return domain.VersionRange{}, zerr.With(zerr.New("constraint has no bounds"), "constraint", s)
	}
	return domain.VersionRange{Lo: lo, Hi: hi}, nil
}
