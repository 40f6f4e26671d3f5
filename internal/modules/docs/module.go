package docs

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/nfrund/docchat/internal/rendering"
)

// Dependencies contains all the dependencies for the docs module.
type Dependencies struct {
	Renderer rendering.Renderer
}

// Module implements the module.Module interface for the docs section.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates a new instance of the docs module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "docs"
}

// Boot resolves the upload surface and registers the docs routes. The uploads
// module must have registered before this module boots.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	surface, ok := registry.Get(reg, registry.UploadSurfaceKey)
	if !ok || surface == nil {
		return fmt.Errorf("docs module requires %q in the registry", registry.UploadSurfaceKey)
	}

	m.handler = NewHandler(m.deps.Renderer, surface, reg.Config().GetAppName())
	g.GET(basePath, m.handler.Page)
	g.POST(dialogPath, m.handler.Dialog)
	return nil
}
