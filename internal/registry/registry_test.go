package registry_test

import (
	"testing"

	"github.com/nfrund/docchat/internal/config"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{AppName: "test"}
	reg := registry.New(cfg)
	assert.Equal(t, "test", reg.Config().GetAppName())

	t.Run("missing key", func(t *testing.T) {
		_, ok := registry.Get(reg, registry.UploadSurfaceKey)
		assert.False(t, ok)
		assert.Panics(t, func() { registry.MustGet(reg, registry.UploadSurfaceKey) })
	})

	t.Run("set then get", func(t *testing.T) {
		registry.Set(reg, registry.UploadSurfaceKey, func() g.Node { return g.Text("surface") })

		surface, ok := registry.Get(reg, registry.UploadSurfaceKey)
		assert.True(t, ok)
		assert.NotNil(t, surface())
	})

	t.Run("type mismatch behaves as missing", func(t *testing.T) {
		const intKey registry.Key[int] = "shared.name"
		const strKey registry.Key[string] = "shared.name"

		registry.Set(reg, intKey, 7)
		_, ok := registry.Get(reg, strKey)
		assert.False(t, ok)
		assert.Equal(t, 7, registry.MustGet(reg, intKey))
	})
}
