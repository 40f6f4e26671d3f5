package module_test

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/config"
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	module.BaseModule
	name     string
	log      *[]string
	bootErr  error
	closeErr error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Register(reg *registry.Registry) error {
	*r.log = append(*r.log, "register "+r.name)
	return nil
}

func (r *recorder) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	*r.log = append(*r.log, "boot "+r.name)
	return r.bootErr
}

func (r *recorder) Shutdown(ctx context.Context) error {
	*r.log = append(*r.log, "shutdown "+r.name)
	return r.closeErr
}

func TestLifecycle(t *testing.T) {
	var log []string
	mods := []module.Module{
		&recorder{name: "a", log: &log},
		&recorder{name: "b", log: &log, closeErr: errors.New("stuck")},
		&recorder{name: "c", log: &log},
	}
	reg := registry.New(&config.Config{})
	ctx := context.Background()

	require.NoError(t, module.RegisterAll(reg, mods))
	require.NoError(t, module.BootAll(ctx, echo.New().Group(""), reg, mods))
	err := module.ShutdownAll(ctx, mods)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "module b: stuck")
	assert.Equal(t, []string{
		"register a", "register b", "register c",
		"boot a", "boot b", "boot c",
		"shutdown c", "shutdown b", "shutdown a",
	}, log)
}

func TestBootAll_StopsAtFirstFailure(t *testing.T) {
	var log []string
	mods := []module.Module{
		&recorder{name: "a", log: &log, bootErr: errors.New("no surface")},
		&recorder{name: "b", log: &log},
	}

	err := module.BootAll(context.Background(), echo.New().Group(""), registry.New(&config.Config{}), mods)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to boot module a")
	assert.Equal(t, []string{"boot a"}, log)
}

func TestBaseModule_NoOps(t *testing.T) {
	var m module.BaseModule
	assert.NoError(t, m.Register(nil))
	assert.NoError(t, m.Boot(context.Background(), nil, nil))
	assert.NoError(t, m.Shutdown(context.Background()))
}
