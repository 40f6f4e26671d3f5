package uploads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/pubsub"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/storage"
)

// Dependencies contains all the dependencies for the uploads module.
type Dependencies struct {
	Renderer   rendering.Renderer
	Store      storage.Store
	Repo       domain.UploadRepository
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	// RateLimit is the number of uploads per second per client IP.
	// Zero selects middleware.DefaultUploadRate.
	RateLimit int
}

// Module implements the module.Module interface for document uploads.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
	cancel  context.CancelFunc
}

// New creates a new instance of the uploads module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "uploads"
}

// Register publishes the upload surface for the modules that host it.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.UploadSurfaceKey, Surface)
	return nil
}

// Boot registers the upload routes and starts the audit subscriber.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	service := NewService(m.deps.Store, m.deps.Repo, m.deps.Publisher, cfg.GetMaxUploadSize(), cfg.GetAllowedMIMETypes())
	m.handler = NewHandler(service, m.deps.Renderer)

	limit := m.deps.RateLimit
	if limit <= 0 {
		limit = middleware.DefaultUploadRate
	}

	g.POST(uploadPath, m.handler.Upload, middleware.RateLimiter(limit))
	g.GET(uploadPath, m.handler.List)
	g.GET(uploadPath+"/:id/download", m.handler.Download)
	g.DELETE(uploadPath+"/:id", m.handler.Delete)

	if m.deps.Subscriber != nil {
		subCtx, cancel := context.WithCancel(ctx)
		if err := Created.Subscribe(subCtx, m.deps.Subscriber, auditCreated(slog.Default().With("module", m.Name()))); err != nil {
			cancel()
			return fmt.Errorf("failed to subscribe to %s: %w", Created.Topic, err)
		}
		m.cancel = cancel
	}
	return nil
}

// Shutdown stops the audit subscriber.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
