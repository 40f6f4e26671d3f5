package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/docchat/internal/app"
	"github.com/nfrund/docchat/internal/config"
	"github.com/nfrund/docchat/internal/database"
	"github.com/nfrund/docchat/internal/domain"
	appmiddleware "github.com/nfrund/docchat/internal/middleware"
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/modules/uploads"
	"github.com/nfrund/docchat/internal/pubsub"
	"github.com/nfrund/docchat/internal/registry"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/storage"
	"github.com/nfrund/docchat/web"
	"github.com/surrealdb/surrealdb.go"
)

// eventBufferSize is the per-subscriber buffer of the in-process event bus.
const eventBufferSize = 64

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	db      *surrealdb.DB
	bridge  *pubsub.WatermillBridge
	modules []module.Module
}

// New builds the server: storage, metadata repository, event bus, middleware
// and every application module, registered and booted.
func New(ctx context.Context, cfg config.Provider) (*Server, error) {
	store, err := storage.New(cfg.GetStorageBackend(), cfg.GetStorageDir())
	if err != nil {
		return nil, err
	}

	s := &Server{
		Cfg:      cfg,
		Registry: registry.New(cfg),
		bridge:   pubsub.NewWatermillBridge(eventBufferSize),
	}

	var repo domain.UploadRepository = database.NewMemoryUploadStore()
	if cfg.GetDBUrl() != "" {
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			_ = s.bridge.Close()
			return nil, err
		}
		s.db = db
		repo = database.NewSurrealUploadStore(db)
	} else {
		slog.Info("SURREAL_URL not set, keeping upload metadata in memory")
	}

	renderer := rendering.NewUniversalRenderer()
	s.E = newEcho(cfg, renderer)

	s.modules = app.NewModules(app.Dependencies{
		Publisher:  s.bridge,
		Subscriber: s.bridge,
		Renderer:   renderer,
		Store:      store,
		UploadRepo: repo,
	})

	if err := module.RegisterAll(s.Registry, s.modules); err != nil {
		s.close(ctx)
		return nil, err
	}
	if err := module.BootAll(ctx, s.E.Group(""), s.Registry, s.modules); err != nil {
		s.close(ctx)
		return nil, fmt.Errorf("failed to boot modules: %w", err)
	}

	s.RegisterRoutes()
	return s, nil
}

// newEcho configures the echo instance and its middleware chain.
func newEcho(cfg config.Provider, renderer *rendering.UniversalRenderer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = uploads.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(appmiddleware.ClientHints)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Use(appmiddleware.Identity(domain.StaticIdentity{User: domain.UserIdentity{
		Name:      cfg.GetDefaultUserName(),
		Email:     cfg.GetDefaultUserEmail(),
		AvatarURL: cfg.GetDefaultUserAvatar(),
	}}))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.StaticFS("/avatars", echo.MustSubFS(web.FS, "static/avatars"))
	return e
}

// close releases what New acquired.
func (s *Server) close(ctx context.Context) {
	if err := s.bridge.Close(); err != nil {
		slog.Warn("Failed to close event bus", "error", err)
	}
	if s.db != nil {
		s.db.Close(ctx)
	}
}
