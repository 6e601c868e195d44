package recipefile

// recipeDTO represents the structure of a recipe YAML file.
type recipeDTO struct {
	Version     string   `yaml:"version"`
	Package     string   `yaml:"package"`
	Homepage    string   `yaml:"homepage"`
	URL         string   `yaml:"url"`
	Git         string   `yaml:"git"`
	Maintainers []string `yaml:"maintainers"`

	Versions     []versionDTO    `yaml:"versions"`
	Variants     []variantDTO    `yaml:"variants"`
	Dependencies []dependencyDTO `yaml:"dependencies"`

	Toolchain   toolchainDTO   `yaml:"toolchain"`
	Environment environmentDTO `yaml:"environment"`
}

type versionDTO struct {
	ID     string `yaml:"id"`
	SHA256 string `yaml:"sha256"`
	Branch string `yaml:"branch"`
}

type variantDTO struct {
	Name        string `yaml:"name"`
	Default     bool   `yaml:"default"`
	Description string `yaml:"description"`
	Flag        string `yaml:"flag"`
}

type dependencyDTO struct {
	Package    string   `yaml:"package"`
	Constraint string   `yaml:"constraint"`
	Kind       string   `yaml:"kind"`
	When       *whenDTO `yaml:"when"`
}

// whenDTO gates a dependency declaration. All present clauses must hold.
type whenDTO struct {
	Variant  string `yaml:"variant"`
	Disabled bool   `yaml:"disabled"`
	Versions string `yaml:"versions"`
}

type toolchainDTO struct {
	Dependency string `yaml:"dependency"`
	CC         string `yaml:"cc"`
	CXX        string `yaml:"cxx"`
}

type environmentDTO struct {
	PrefixVar string            `yaml:"prefixVar"`
	BinVar    string            `yaml:"binVar"`
	Build     map[string]string `yaml:"build"`
}
