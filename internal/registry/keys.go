package registry

import g "maragu.dev/gomponents"

// Service keys shared between modules. Using constants prevents typos.
const (
	// UploadSurfaceKey resolves the component that renders the upload form.
	// The uploads module provides it; the docs dialog mounts it.
	UploadSurfaceKey Key[func() g.Node] = "uploads.surface"
)
