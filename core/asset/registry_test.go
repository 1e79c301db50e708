package asset_test

import (
	"context"
	"errors"
	"testing"

	"asset-loader/core/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constLoader returns a LoadFunc yielding v.
func constLoader(v asset.Asset) asset.LoadFunc {
	return func(ctx context.Context, opts asset.Options) (asset.Asset, error) {
		return v, nil
	}
}

func resolveValue(t *testing.T, reg *asset.Registry, spec asset.Spec) asset.Asset {
	t.Helper()
	fn, err := reg.Resolve(spec)
	require.NoError(t, err)
	v, err := fn(context.Background(), asset.Options{URL: spec.URL})
	require.NoError(t, err)
	return v
}

func TestRegistry_Register(t *testing.T) {
	t.Run("NormalizesKey", func(t *testing.T) {
		reg := asset.NewRegistry()
		require.NoError(t, reg.Register(asset.Descriptor{Key: " Image ", Load: constLoader("img")}))
		assert.Equal(t, []string{"image"}, reg.Keys())
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		reg := asset.NewRegistry(asset.Descriptor{Key: "text", Load: constLoader("a")})
		err := reg.Register(asset.Descriptor{Key: "TEXT", Load: constLoader("b")})
		assert.ErrorIs(t, err, asset.ErrDuplicateKey)
		assert.Len(t, reg.Keys(), 1)
	})

	t.Run("MissingKey", func(t *testing.T) {
		reg := asset.NewRegistry()
		assert.Error(t, reg.Register(asset.Descriptor{Load: constLoader("a")}))
	})

	t.Run("MissingLoad", func(t *testing.T) {
		reg := asset.NewRegistry()
		assert.Error(t, reg.Register(asset.Descriptor{Key: "text"}))
	})

	t.Run("NewRegistryPanicsOnInvalid", func(t *testing.T) {
		assert.Panics(t, func() {
			asset.NewRegistry(asset.Descriptor{Key: "text"})
		})
	})
}

func TestRegistry_Resolve(t *testing.T) {
	reg := asset.NewRegistry(
		asset.Descriptor{Key: "json", Match: asset.MatchPattern("json"), Load: constLoader("json")},
		asset.Descriptor{Key: "image", Match: asset.MatchPattern("png|jpe?g"), Load: constLoader("image")},
		asset.Descriptor{Key: "any-image", Match: asset.MatchPattern("png|gif"), Load: constLoader("any-image")},
		asset.Descriptor{Key: "blob", Load: constLoader("blob")},
	)

	t.Run("ByExtension", func(t *testing.T) {
		assert.Equal(t, "json", resolveValue(t, reg, asset.Spec{URL: "data/foo.json"}))
		assert.Equal(t, "image", resolveValue(t, reg, asset.Spec{URL: "a/b/c.PNG?x=1#y"}))
	})

	t.Run("RegistrationOrderBreaksTies", func(t *testing.T) {
		assert.Equal(t, "image", resolveValue(t, reg, asset.Spec{URL: "baboon.png"}))
		assert.Equal(t, "any-image", resolveValue(t, reg, asset.Spec{URL: "anim.gif"}))
	})

	t.Run("ByTypeIgnoresCase", func(t *testing.T) {
		assert.Equal(t, "image", resolveValue(t, reg, asset.Spec{URL: "baboon-no-ext", Type: asset.Type("Image")}))
		assert.Equal(t, "image", resolveValue(t, reg, asset.Spec{URL: "baboon-no-ext", Type: asset.Type("image")}))
	})

	t.Run("TypeOverridesExtension", func(t *testing.T) {
		assert.Equal(t, "blob", resolveValue(t, reg, asset.Spec{URL: "song.json", Type: asset.Type("blob")}))
	})

	t.Run("KeyOnlyDescriptorNeverMatches", func(t *testing.T) {
		_, err := reg.Resolve(asset.Spec{URL: "file.blob"})
		var unknown *asset.UnknownExtensionError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, ".blob", unknown.Extension)
	})

	t.Run("AdhocBypassesRegistry", func(t *testing.T) {
		fn, err := reg.Resolve(asset.Spec{Type: asset.Func(constLoader("custom"))})
		require.NoError(t, err)
		v, err := fn(context.Background(), asset.Options{})
		require.NoError(t, err)
		assert.Equal(t, "custom", v)
	})

	t.Run("UnknownType", func(t *testing.T) {
		for _, typ := range []string{"font", "Font"} {
			_, err := reg.Resolve(asset.Spec{URL: "a.ttf", Type: asset.Type(typ)})
			var unknown *asset.UnknownTypeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, typ, unknown.Type)
			assert.ErrorIs(t, err, asset.ErrUnknownType)
		}
	})

	t.Run("MissingURLWithType", func(t *testing.T) {
		_, err := reg.Resolve(asset.Spec{Type: asset.Type("image")})
		assert.ErrorIs(t, err, asset.ErrMissingURL)
	})

	t.Run("MissingURLWithoutType", func(t *testing.T) {
		_, err := reg.Resolve(asset.Spec{Options: map[string]any{"crossOrigin": "anonymous"}})
		assert.ErrorIs(t, err, asset.ErrMissingURL)
	})

	t.Run("MissingExtension", func(t *testing.T) {
		_, err := reg.Resolve(asset.Spec{URL: "fixtures/baboon-no-ext"})
		var missing *asset.MissingExtensionError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "fixtures/baboon-no-ext", missing.URL)
		assert.True(t, errors.Is(err, asset.ErrMissingExtension))
		assert.True(t, asset.IsResolutionError(err))
	})
}

func TestRegistry_Descriptors(t *testing.T) {
	reg := asset.NewRegistry(
		asset.Descriptor{Key: "b", Load: constLoader(1)},
		asset.Descriptor{Key: "a", Load: constLoader(2)},
	)

	descs := reg.Descriptors()
	require.Len(t, descs, 2)
	assert.Equal(t, "b", descs[0].Key)
	assert.Equal(t, "a", descs[1].Key)

	// Snapshot is detached from the registry.
	descs[0].Key = "changed"
	assert.Equal(t, []string{"b", "a"}, reg.Keys())
}
