package app

import (
	"github.com/nfrund/docchat/internal/module"
	"github.com/nfrund/docchat/internal/modules/chatshell"
	"github.com/nfrund/docchat/internal/modules/docs"
	"github.com/nfrund/docchat/internal/modules/uploads"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// uploads registers the surface the docs dialog mounts.
		uploads.New(uploadsDeps(deps)),
		chatshell.New(chatshellDeps(deps)),
		docs.New(docsDeps(deps)),
	}
}
