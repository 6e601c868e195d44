// Package registry holds the known package descriptors. The registry is
// built explicitly at wiring time; descriptors never register themselves
// as a side effect of package loading.
package registry

import (
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry implements ports.RecipeRegistry with an in-memory map.
type Registry struct {
	descriptors map[domain.InternedString]*domain.Descriptor
	order       []domain.InternedString
}

// New creates a Registry seeded with the given descriptors.
func New(descriptors ...*domain.Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[domain.InternedString]*domain.Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if err := r.Add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a descriptor. Registering the same package twice is an error.
func (r *Registry) Add(d *domain.Descriptor) error {
	name := domain.NewInternedString(d.Name())
	if _, exists := r.descriptors[name]; exists {
		return zerr.With(domain.ErrDuplicatePackage, "package", d.Name())
	}
	r.descriptors[name] = d
	r.order = append(r.order, name)
	return nil
}

// Get returns the descriptor for the named package.
func (r *Registry) Get(name string) (*domain.Descriptor, error) {
	d, ok := r.descriptors[domain.NewInternedString(name)]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
	}
	return d, nil
}

// List returns all registered descriptors in registration order.
func (r *Registry) List() []*domain.Descriptor {
	out := make([]*domain.Descriptor, len(r.order))
	for i, name := range r.order {
		out[i] = r.descriptors[name]
	}
	return out
}
