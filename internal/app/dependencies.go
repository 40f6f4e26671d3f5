package app

import (
	"github.com/nfrund/docchat/internal/domain"
	"github.com/nfrund/docchat/internal/modules/chatshell"
	"github.com/nfrund/docchat/internal/modules/docs"
	"github.com/nfrund/docchat/internal/modules/uploads"
	"github.com/nfrund/docchat/internal/pubsub"
	"github.com/nfrund/docchat/internal/rendering"
	"github.com/nfrund/docchat/internal/storage"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Store      storage.Store
	UploadRepo domain.UploadRepository
	// UploadRateLimit is the per-IP upload rate; zero uses the default.
	UploadRateLimit int
}

// uploadsDeps creates the dependency struct for the uploads module.
func uploadsDeps(deps Dependencies) uploads.Dependencies {
	return uploads.Dependencies{
		Renderer:   deps.Renderer,
		Store:      deps.Store,
		Repo:       deps.UploadRepo,
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		RateLimit:  deps.UploadRateLimit,
	}
}

// chatshellDeps creates the dependency struct for the chat shell module.
func chatshellDeps(deps Dependencies) chatshell.Dependencies {
	return chatshell.Dependencies{Renderer: deps.Renderer}
}

// docsDeps creates the dependency struct for the docs module.
func docsDeps(deps Dependencies) docs.Dependencies {
	return docs.Dependencies{Renderer: deps.Renderer}
}
