package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/registry"
)

// Module defines the contract for a self-contained application feature such as
// the chat shell, the docs page or the upload endpoints.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during application startup to register the module's
	// services with the central registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered their services.
	// This is the phase for setting up routes and starting background processes.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful application shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides default no-op implementations for Module methods.
// Modules can embed this to avoid implementing methods they don't need.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}

// RegisterAll runs the Register phase of every module in order.
func RegisterAll(reg *registry.Registry, modules []Module) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
		slog.Debug("Module registered", "module", m.Name())
	}
	return nil
}

// BootAll runs the Boot phase of every module in order. It must be called
// after RegisterAll so services registered by any module are available.
func BootAll(ctx context.Context, router *echo.Group, reg *registry.Registry, modules []Module) error {
	for _, m := range modules {
		if err := m.Boot(ctx, router, reg); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}

// ShutdownAll shuts modules down in reverse order. Every module is given the
// chance to shut down; the errors are joined.
func ShutdownAll(ctx context.Context, modules []Module) error {
	var errs []error
	for i := len(modules) - 1; i >= 0; i-- {
		if err := modules[i].Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", modules[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
