package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Resolution is the fully determined configuration for one build: the
// selected version, a boolean value per variant, and an install prefix per
// resolved dependency. It is immutable after construction; the external
// resolver builds one per invocation and discards it afterwards.
type Resolution struct {
	versionID string
	variants  map[InternedString]bool
	locations map[InternedString]string
}

// NewResolution creates a Resolution. The input maps are copied, so later
// mutation by the caller does not affect the resolution.
func NewResolution(versionID string, variants map[string]bool, locations map[string]string) *Resolution {
	r := &Resolution{
		versionID: versionID,
		variants:  make(map[InternedString]bool, len(variants)),
		locations: make(map[InternedString]string, len(locations)),
	}
	for name, value := range variants {
		r.variants[NewInternedString(name)] = value
	}
	for pkg, prefix := range locations {
		r.locations[NewInternedString(pkg)] = prefix
	}
	return r
}

// VersionID returns the selected version identifier.
func (r *Resolution) VersionID() string {
	return r.versionID
}

// Variant returns the resolved value of the named variant and whether the
// variant is present in the resolution.
func (r *Resolution) Variant(name InternedString) (value, ok bool) {
	value, ok = r.variants[name]
	return value, ok
}

// VariantEnabled reports whether the named variant resolved to true.
// Absent variants report false.
func (r *Resolution) VariantEnabled(name InternedString) bool {
	return r.variants[name]
}

// Location returns the resolved install prefix of the given dependency and
// whether the dependency is present in the resolution.
func (r *Resolution) Location(pkg InternedString) (prefix string, ok bool) {
	prefix, ok = r.locations[pkg]
	return prefix, ok
}

// Variants returns a copy of the variant assignment keyed by plain strings.
func (r *Resolution) Variants() map[string]bool {
	out := make(map[string]bool, len(r.variants))
	for name, value := range r.variants {
		out[name.String()] = value
	}
	return out
}

// Fingerprint computes a deterministic hash of the resolution's contents.
// Equal resolutions always produce equal fingerprints, making the value
// usable as a cache key or a log correlation ID.
func (r *Resolution) Fingerprint() string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(r.versionID)
	_, _ = hasher.Write([]byte{0})

	for _, name := range sortedKeys(r.variants) {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		if r.variants[NewInternedString(name)] {
			_, _ = hasher.Write([]byte{'1'})
		} else {
			_, _ = hasher.Write([]byte{'0'})
		}
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, pkg := range sortedKeys(r.locations) {
		_, _ = hasher.WriteString(pkg)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(r.locations[NewInternedString(pkg)])
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func sortedKeys[V any](m map[InternedString]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}
