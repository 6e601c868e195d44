package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/registry"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/recipes/pism"
)

func newDescriptor(t *testing.T, name string) *domain.Descriptor {
	t.Helper()
	desc, err := domain.NewDescriptor(domain.DescriptorConfig{
		Name:     name,
		Versions: []domain.Version{{ID: "1.0"}},
	})
	require.NoError(t, err)
	return desc
}

func TestRegistry(t *testing.T) {
	t.Run("lists in registration order", func(t *testing.T) {
		a := newDescriptor(t, "alpha")
		b := newDescriptor(t, "beta")

		reg, err := registry.New(b, a)
		require.NoError(t, err)

		list := reg.List()
		require.Len(t, list, 2)
		assert.Equal(t, "beta", list[0].Name())
		assert.Equal(t, "alpha", list[1].Name())
	})

	t.Run("gets a registered descriptor", func(t *testing.T) {
		desc, err := pism.New()
		require.NoError(t, err)

		reg, err := registry.New(desc)
		require.NoError(t, err)

		got, err := reg.Get("pism")
		require.NoError(t, err)
		assert.Same(t, desc, got)
	})

	t.Run("fails on an unknown package", func(t *testing.T) {
		reg, err := registry.New()
		require.NoError(t, err)

		_, err = reg.Get("pism")
		require.ErrorContains(t, err, domain.ErrUnknownPackage.Error())
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		reg, err := registry.New(newDescriptor(t, "alpha"))
		require.NoError(t, err)

		err = reg.Add(newDescriptor(t, "alpha"))
		require.ErrorContains(t, err, domain.ErrDuplicatePackage.Error())
	})
}
