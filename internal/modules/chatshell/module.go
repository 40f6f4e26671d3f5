package chatshell

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/nfrund/docchat/internal/rendering"
)

// Dependencies are the services the chat shell module needs.
type Dependencies struct {
	Renderer rendering.Renderer
}

// Module wires the chat section into the application.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the chat shell module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return "chatshell"
}

// Boot registers the chat routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	m.handler = NewHandler(m.deps.Renderer, reg.Config().GetAppName())
	g.GET(basePath, m.handler.Page)
	g.POST(unreadsPath, m.handler.ToggleUnreads)
	return nil
}
